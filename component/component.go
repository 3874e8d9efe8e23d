package component

import (
	"sort"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/maskedbox"
)

// Component is a local, tentative view of a connected component.
// OriginalDeepest and OriginalValue never change after construction;
// everything else is updated as rounds progress.
type Component struct {
	OriginalDeepest amrvertex.Id
	OriginalValue   amrvertex.Value

	GlobalDeepest amrvertex.Id
	GlobalValue   amrvertex.Value

	CurrentNeighbors   map[int]struct{}
	ProcessedNeighbors map[int]struct{}
	OutgoingEdges      []maskedbox.AmrEdge
}

// New returns a fresh Component rooted at deepest, with both
// current/processed neighbor sets initially empty and no outgoing
// edges — callers populate those via SetEdges.
func New(deepest amrvertex.Id, value amrvertex.Value) *Component {
	return &Component{
		OriginalDeepest:    deepest,
		OriginalValue:      value,
		GlobalDeepest:      deepest,
		GlobalValue:        value,
		CurrentNeighbors:   make(map[int]struct{}),
		ProcessedNeighbors: make(map[int]struct{}),
	}
}

// SetEdges keeps, from candidateEdges, only those whose near endpoint
// belongs to this component under find (the local merge tree / union
// structure's find, supplied by the caller), then recomputes
// CurrentNeighbors from the surviving edges — the Go shape of
// FabComponentBlock::ConnectedComponent::set_edges.
func (c *Component) SetEdges(candidateEdges []maskedbox.AmrEdge, find func(amrvertex.Id) amrvertex.Id) {
	c.OutgoingEdges = c.OutgoingEdges[:0]
	for _, e := range candidateEdges {
		if find(e.U) == c.OriginalDeepest {
			c.OutgoingEdges = append(c.OutgoingEdges, e)
		}
	}
	c.InitCurrentNeighbors()
}

// InitCurrentNeighbors rebuilds CurrentNeighbors from OutgoingEdges'
// remote gids.
func (c *Component) InitCurrentNeighbors() {
	c.CurrentNeighbors = make(map[int]struct{}, len(c.OutgoingEdges))
	for _, e := range c.OutgoingEdges {
		c.CurrentNeighbors[e.V.Gid] = struct{}{}
	}
}

// IsDone reports whether this component has nothing left to send this
// round: every current neighbor has already been processed.
func (c *Component) IsDone() bool {
	for g := range c.CurrentNeighbors {
		if _, ok := c.ProcessedNeighbors[g]; !ok {
			return false
		}
	}
	return true
}

// MustSendToGid reports whether gid is a current neighbor this
// component has not yet notified this round.
func (c *Component) MustSendToGid(gid int) bool {
	if _, cur := c.CurrentNeighbors[gid]; !cur {
		return false
	}
	_, done := c.ProcessedNeighbors[gid]
	return !done
}

// PendingGids returns, in ascending order for determinism, every gid
// this component still must send to this round.
func (c *Component) PendingGids() []int {
	var out []int
	for g := range c.CurrentNeighbors {
		if _, done := c.ProcessedNeighbors[g]; !done {
			out = append(out, g)
		}
	}
	sort.Ints(out)
	return out
}

// EdgesTo returns the subset of OutgoingEdges terminating at gid, the
// payload a round sends alongside this component's identity and
// current global root.
func (c *Component) EdgesTo(gid int) []maskedbox.AmrEdge {
	var out []maskedbox.AmrEdge
	for _, e := range c.OutgoingEdges {
		if e.V.Gid == gid {
			out = append(out, e)
		}
	}
	return out
}

// DropLowEdges removes any outgoing edge whose remote endpoint is
// known to be LOW and recomputes CurrentNeighbors. stillActive reports
// whether a remote vertex was named at all in the sender's latest
// message in the opposite direction.
func (c *Component) DropLowEdges(stillActive func(amrvertex.Id) bool) {
	kept := c.OutgoingEdges[:0]
	for _, e := range c.OutgoingEdges {
		if stillActive(e.V) {
			kept = append(kept, e)
		}
	}
	c.OutgoingEdges = kept
	c.InitCurrentNeighbors()
}

// AdvanceGlobal updates GlobalDeepest/GlobalValue to the current
// representative of this component's disjoint-set class, never
// regressing under the fixed deepness order. It reports whether the
// representative actually changed; the caller must then reopen every
// already-processed neighbor that did not itself supply this round's
// improvement (ReopenProcessed) so the improved root keeps propagating
// hop-by-hop across blocks that only share an edge with this one
// indirectly — a multi-hop chain converges only if every block that
// observes a deeper root forwards it to its other neighbors.
func (c *Component) AdvanceGlobal(negate bool, repValue amrvertex.Value, rep amrvertex.Id) bool {
	cur := amrvertex.ValueId{Value: c.GlobalValue, Id: c.GlobalDeepest}
	candidate := amrvertex.ValueId{Value: repValue, Id: rep}
	if amrvertex.Order(negate, candidate, cur) {
		c.GlobalDeepest = rep
		c.GlobalValue = repValue
		return true
	}
	return false
}

// ReopenProcessed removes every gid from ProcessedNeighbors for which
// keep reports false, forcing the next Send to retransmit this
// component's current state to them. A gid this round already heard
// from (keep returns true for it) is left marked processed: it is, by
// construction, at least as informed as the value that was just
// derived from it, so retransmitting to it would be a same-round
// round-trip with nothing new to say.
func (c *Component) ReopenProcessed(keep func(gid int) bool) {
	for g := range c.ProcessedNeighbors {
		if !keep(g) {
			delete(c.ProcessedNeighbors, g)
		}
	}
}
