package block

import (
	"sort"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/component"
	"github.com/katalvlaran/amrmerge/disjointset"
	"github.com/katalvlaran/amrmerge/maskedbox"
	"github.com/katalvlaran/amrmerge/mergetree"
)

// Message is one round's payload from a single component to a single
// remote gid: the component's identity, its current believed global
// root, and the subset of its outgoing edges terminating at that gid.
type Message struct {
	Sender        int
	Component     amrvertex.Id
	GlobalDeepest amrvertex.Id
	GlobalValue   amrvertex.Value
	Edges         []maskedbox.AmrEdge
}

// Block is the per-partition connected-component state machine that
// drives the bulk-synchronous merge protocol.
type Block struct {
	Gid int

	negate   bool
	preserve bool

	Box   *maskedbox.Box
	Tree  *mergetree.Tree
	DSU   *disjointset.DisjointSets

	Components  []*component.Component
	componentOf map[amrvertex.Id]*component.Component

	RoundNumber int
	localDone   bool

	seenThisRound map[int]map[amrvertex.Id]bool
}

// New returns an uninitialized Block; call Init with a built MaskedBox
// before running any round.
func New(gid int, negate, preserve bool) *Block {
	return &Block{
		Gid:         gid,
		negate:      negate,
		preserve:    preserve,
		componentOf: make(map[amrvertex.Id]*component.Component),
	}
}

// Init performs round-0 initialisation: build the local merge tree
// over box's Active vertices (with core-boundary cells forced to
// remain real nodes), seed one Component per tree root, assign initial
// cross-boundary edges to the component that owns their near endpoint,
// and insert every component's root into the disjoint set.
func (b *Block) Init(box *maskedbox.Box) {
	b.Box = box
	b.Tree = mergetree.New(b.negate)
	collapsible := func(v amrvertex.Id) bool { return !box.IsCoreBoundary(v) }
	valueOf := func(v amrvertex.Id) amrvertex.Value {
		val, _ := box.Value(v)
		return val
	}
	// Root pull-out always runs here, independent of b.preserve (that
	// flag is not consulted: supernodes always keep their folded plain
	// vertices). Without pull-out, a tree
	// whose deepest vertex collapses into an existing root on its last
	// processing step would seed its Component from the shallower real
	// root instead of the true local extremum.
	mergetree.Compute(b.Tree, box, valueOf, collapsible, true)

	b.DSU = disjointset.New(b.negate)
	b.Components = nil
	b.componentOf = make(map[amrvertex.Id]*component.Component)

	for _, root := range b.Tree.Roots() {
		c := component.New(root.Vertex, root.Value)
		b.Components = append(b.Components, c)
		b.componentOf[root.Vertex] = c
		b.DSU.Insert(root.Vertex, root.Value)
	}

	var allEdges []maskedbox.AmrEdge
	for _, bucket := range box.InitialEdges() {
		allEdges = append(allEdges, bucket...)
	}
	for _, c := range b.Components {
		c.SetEdges(allEdges, b.localFind)
	}
}

// localFind walks a node's parent chain in the (unsparsified,
// pre-union) local merge tree to find its root vertex — the per-block
// find(u) step of the protocol.
func (b *Block) localFind(v amrvertex.Id) amrvertex.Id {
	n, ok := b.Tree.Node(v)
	if !ok {
		return v
	}
	for n.Parent != nil {
		n = n.Parent
	}
	return n.Vertex
}

func (b *Block) ownerOf(v amrvertex.Id) (*component.Component, bool) {
	c, ok := b.componentOf[b.localFind(v)]
	return c, ok
}

// Round runs one bulk-synchronous round: apply incoming (delivered by
// the driver from the previous round's outbox), adjust outgoing edges
// for any endpoints now known LOW, recompute local termination, and
// produce this round's outgoing messages, bucketed by destination gid.
func (b *Block) Round(incoming []Message) map[int][]Message {
	b.RoundNumber++
	unioned, newReceiver := b.receive(incoming)
	b.adjustOutgoingEdges()
	b.localDone = b.allComponentsDone() && !unioned && !newReceiver
	return b.send()
}

func (b *Block) send() map[int][]Message {
	out := make(map[int][]Message)
	for _, c := range b.Components {
		for _, g := range c.PendingGids() {
			out[g] = append(out[g], Message{
				Sender:        b.Gid,
				Component:     c.OriginalDeepest,
				GlobalDeepest: c.GlobalDeepest,
				GlobalValue:   c.GlobalValue,
				Edges:         c.EdgesTo(g),
			})
			c.ProcessedNeighbors[g] = struct{}{}
		}
	}
	return out
}

func (b *Block) receive(incoming []Message) (unioned, newReceiver bool) {
	b.seenThisRound = make(map[int]map[amrvertex.Id]bool)

	for _, msg := range incoming {
		seen := b.seenThisRound[msg.Sender]
		if seen == nil {
			seen = make(map[amrvertex.Id]bool)
			b.seenThisRound[msg.Sender] = seen
		}

		for _, e := range msg.Edges {
			seen[e.U] = true

			cLocal, ok := b.ownerOf(e.V)
			if !ok {
				continue
			}
			if _, has := cLocal.CurrentNeighbors[msg.Sender]; !has {
				cLocal.CurrentNeighbors[msg.Sender] = struct{}{}
				newReceiver = true
			}
			if !b.DSU.Contains(msg.GlobalDeepest) {
				b.DSU.Insert(msg.GlobalDeepest, msg.GlobalValue)
			}
			ra, errA := b.DSU.Find(cLocal.OriginalDeepest)
			rb, errB := b.DSU.Find(msg.GlobalDeepest)
			if errA == nil && errB == nil && ra != rb {
				unioned = true
			}
			b.DSU.Union(cLocal.OriginalDeepest, msg.GlobalDeepest)
		}
	}

	heardFrom := func(g int) bool { _, ok := b.seenThisRound[g]; return ok }
	for _, c := range b.Components {
		if rep, err := b.DSU.FindValue(c.OriginalDeepest); err == nil {
			if c.AdvanceGlobal(b.negate, rep.Value, rep.Id) {
				c.ReopenProcessed(heardFrom)
			}
		}
	}
	return unioned, newReceiver
}

// adjustOutgoingEdges drops outgoing edges whose remote endpoint was
// not named this round by a sender we heard from at all this round: a
// gid silent this round carries no information and never triggers a
// drop; a gid we did hear from but which didn't mention a given remote
// vertex is reporting it LOW.
func (b *Block) adjustOutgoingEdges() {
	if b.RoundNumber == 0 {
		return
	}
	stillActive := func(v amrvertex.Id) bool {
		seen, heardFromGid := b.seenThisRound[v.Gid]
		if !heardFromGid {
			return true
		}
		return seen[v]
	}
	for _, c := range b.Components {
		c.DropLowEdges(stillActive)
	}
}

func (b *Block) allComponentsDone() bool {
	for _, c := range b.Components {
		if !c.IsDone() {
			return false
		}
	}
	return true
}

// ComponentByOriginalDeepest returns the component this block created
// rooted at v, or ErrUnknownComponent if v never named a root here.
func (b *Block) ComponentByOriginalDeepest(v amrvertex.Id) (*component.Component, error) {
	c, ok := b.componentOf[v]
	if !ok {
		return nil, ErrUnknownComponent
	}
	return c, nil
}

// Negate reports this block's deepness direction.
func (b *Block) Negate() bool { return b.negate }

// Preserve reports the preserve flag this block was built with. Init
// and Restore keep plain (non-extremum, non-saddle) vertices in the
// merge tree whether or not it is set.
func (b *Block) Preserve() bool { return b.preserve }

// Restore reconstructs a Block from previously checkpointed state: a
// classified Box, a disjoint-set forest, and a component vector. The
// local merge tree is rebuilt from box — deterministic given the same
// Active mask and field values, so it is never itself part of the
// checkpoint format; only the mask is serializable state. localDone
// and the per-sender seen set start at their round-start zero values,
// exactly as every live Round call already recomputes them from
// scratch.
func Restore(gid int, negate, preserve bool, box *maskedbox.Box, dsu *disjointset.DisjointSets, components []*component.Component, round int) *Block {
	b := &Block{
		Gid:         gid,
		negate:      negate,
		preserve:    preserve,
		Box:         box,
		DSU:         dsu,
		Components:  components,
		RoundNumber: round,
		componentOf: make(map[amrvertex.Id]*component.Component, len(components)),
	}

	b.Tree = mergetree.New(negate)
	collapsible := func(v amrvertex.Id) bool { return !box.IsCoreBoundary(v) }
	valueOf := func(v amrvertex.Id) amrvertex.Value {
		val, _ := box.Value(v)
		return val
	}
	// Mirrors Init: pull-out always runs so the rebuilt tree's roots
	// match what they were before checkpointing, regardless of preserve.
	mergetree.Compute(b.Tree, box, valueOf, collapsible, true)

	for _, c := range components {
		b.componentOf[c.OriginalDeepest] = c
	}
	return b
}

// LocalDone reports this block's local termination flag as of the most
// recent Round call.
func (b *Block) LocalDone() bool { return b.localDone }

// DeepestVertices returns each component's current GlobalDeepest, in
// OriginalDeepest order, for deterministic reporting once the protocol
// has quiesced.
func (b *Block) DeepestVertices() []amrvertex.Id {
	cs := append([]*component.Component(nil), b.Components...)
	sort.Slice(cs, func(i, j int) bool { return cs[i].OriginalDeepest.Less(cs[j].OriginalDeepest) })
	out := make([]amrvertex.Id, len(cs))
	for i, c := range cs {
		out[i] = c.GlobalDeepest
	}
	return out
}
