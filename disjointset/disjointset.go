package disjointset

import "github.com/katalvlaran/amrmerge/amrvertex"

// DisjointSets is a union-find forest keyed by amrvertex.Id. Find
// performs path compression; Union always makes the deeper vertex
// (under amrvertex.Order) the representative of the merged class by
// relinking the shallower root under the deeper one; rank is kept up to
// date but does not decide the linking (see Union).
//
// Complexity: Find and Union are O(α(n)) amortised; α is the inverse
// Ackermann function.
type DisjointSets struct {
	negate bool
	parent map[amrvertex.Id]amrvertex.Id
	rank   map[amrvertex.Id]int
	value  map[amrvertex.Id]amrvertex.Value
}

// New returns an empty DisjointSets using the given deepness direction.
func New(negate bool) *DisjointSets {
	return &DisjointSets{
		negate: negate,
		parent: make(map[amrvertex.Id]amrvertex.Id),
		rank:   make(map[amrvertex.Id]int),
		value:  make(map[amrvertex.Id]amrvertex.Value),
	}
}

// Insert adds v as its own representative with the given value if it is
// not already present. Idempotent: re-inserting an existing vertex is a
// no-op, even with a different value, since a vertex's value is fixed at
// first sight (its deepness never changes after construction).
func (d *DisjointSets) Insert(v amrvertex.Id, value amrvertex.Value) {
	if _, ok := d.parent[v]; ok {
		return
	}
	d.parent[v] = v
	d.rank[v] = 0
	d.value[v] = value
}

// Contains reports whether v has been inserted.
func (d *DisjointSets) Contains(v amrvertex.Id) bool {
	_, ok := d.parent[v]
	return ok
}

// Find returns the representative of v's class, compressing the path
// traversed. It returns ErrUnknownVertex if v was never inserted.
func (d *DisjointSets) Find(v amrvertex.Id) (amrvertex.Id, error) {
	if !d.Contains(v) {
		return amrvertex.Id{}, ErrUnknownVertex
	}
	return d.find(v), nil
}

// find is the unchecked internal path-compressing lookup.
func (d *DisjointSets) find(v amrvertex.Id) amrvertex.Id {
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}
	return root
}

// FindValue returns the (Value, Id) pair of v's representative.
func (d *DisjointSets) FindValue(v amrvertex.Id) (amrvertex.ValueId, error) {
	root, err := d.Find(v)
	if err != nil {
		return amrvertex.ValueId{}, err
	}
	return amrvertex.ValueId{Value: d.value[root], Id: root}, nil
}

// Union merges the classes of a and b. The representative of the
// resulting class is always the deeper of find(a), find(b) under
// amrvertex.Order — never chosen by rank or size. The shallower root is
// always relinked under the deeper one, and the deeper root's rank is
// bumped when the two ranks tie. Returns
// the representative's (Value, Id) pair.
func (d *DisjointSets) Union(a, b amrvertex.Id) (amrvertex.ValueId, error) {
	ra, err := d.Find(a)
	if err != nil {
		return amrvertex.ValueId{}, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return amrvertex.ValueId{}, err
	}
	if ra == rb {
		return amrvertex.ValueId{Value: d.value[ra], Id: ra}, nil
	}

	va := amrvertex.ValueId{Value: d.value[ra], Id: ra}
	vb := amrvertex.ValueId{Value: d.value[rb], Id: rb}
	deep, shallow := ra, rb
	if amrvertex.Order(d.negate, vb, va) {
		deep, shallow = rb, ra
	}

	d.parent[shallow] = deep
	if d.rank[shallow] == d.rank[deep] {
		d.rank[deep]++
	}

	return amrvertex.ValueId{Value: d.value[deep], Id: deep}, nil
}

// Len reports how many vertices have been inserted.
func (d *DisjointSets) Len() int {
	return len(d.parent)
}

// Negate reports the deepness direction this structure was built with.
func (d *DisjointSets) Negate() bool {
	return d.negate
}

// Entry is one vertex's raw forest state, for serialization — the
// disjoint-set-arrays record stored alongside the mask in a block's
// serialization format.
type Entry struct {
	Vertex amrvertex.Id
	Parent amrvertex.Id
	Rank   int
	Value  amrvertex.Value
}

// Snapshot returns every inserted vertex's raw forest state, in
// unspecified order. It does not path-compress; Restore reconstructs
// the exact parent pointers as they stood at snapshot time.
func (d *DisjointSets) Snapshot() []Entry {
	out := make([]Entry, 0, len(d.parent))
	for v, p := range d.parent {
		out = append(out, Entry{Vertex: v, Parent: p, Rank: d.rank[v], Value: d.value[v]})
	}
	return out
}

// Restore rebuilds a DisjointSets from a Snapshot taken with the same
// negate direction, exactly reproducing the prior parent/rank/value
// state (including any un-compressed paths).
func Restore(negate bool, entries []Entry) *DisjointSets {
	d := New(negate)
	for _, e := range entries {
		d.parent[e.Vertex] = e.Parent
		d.rank[e.Vertex] = e.Rank
		d.value[e.Vertex] = e.Value
	}
	return d
}
