package mergetree

import "github.com/katalvlaran/amrmerge/amrvertex"

// Node is a critical node of a merge tree: the node's own vertex/value,
// its parent (a relation, not an ownership edge), its children, any
// collapsed "plain" vertices folded into this supernode, and a single
// scratch slot reused by every algorithm in this package.
type Node struct {
	Vertex   amrvertex.Id
	Value    amrvertex.Value
	Parent   *Node
	Children []*Node
	Vertices []amrvertex.ValueId

	aux *Node
}

// ValueId returns the node's own (Value, Id) pair, as used by
// amrvertex.Order comparisons throughout this package.
func (n *Node) ValueId() amrvertex.ValueId {
	return amrvertex.ValueId{Value: n.Value, Id: n.Vertex}
}

// AnyVertex reports whether special holds for the node's own vertex or
// any of its collapsed plain vertices — the predicate sparsify and
// degree-2 contraction use to decide what must be preserved.
func (n *Node) AnyVertex(special func(amrvertex.Id) bool) bool {
	if special(n.Vertex) {
		return true
	}
	for _, vv := range n.Vertices {
		if special(vv.Id) {
			return true
		}
	}
	return false
}

// Tree is an in-memory forest of Nodes, one forest per local box.
// nodes maps every vertex that has ever been added — real node keys map
// to themselves (node.Vertex == key); plain-vertex keys left over
// mid-build map to the node absorbing them and are pruned by cleanup
// steps before the forest is considered finished.
type Tree struct {
	Negate bool
	nodes  map[amrvertex.Id]*Node
}

// New returns an empty Tree using the given deepness direction.
func New(negate bool) *Tree {
	return &Tree{Negate: negate, nodes: make(map[amrvertex.Id]*Node)}
}

// Contains reports whether v has a live entry (real or not-yet-pruned
// plain) in the tree.
func (t *Tree) Contains(v amrvertex.Id) bool {
	_, ok := t.nodes[v]
	return ok
}

// Node returns the live entry for v, if any. Note this may be a plain
// vertex's absorbing root node during construction, before cleanup.
func (t *Tree) Node(v amrvertex.Id) (*Node, bool) {
	n, ok := t.nodes[v]
	return n, ok
}

// Nodes returns the live internal vertex->node map. Callers must not
// mutate it; it is exposed for read-only traversal and tests, mirroring
// lvlath/core's InternalVertices() convention.
func (t *Tree) Nodes() map[amrvertex.Id]*Node {
	return t.nodes
}

// Roots returns every node in the tree whose Parent is nil, i.e. one
// per connected component of the underlying filtration.
func (t *Tree) Roots() []*Node {
	var roots []*Node
	for k, n := range t.nodes {
		if k == n.Vertex && n.Parent == nil {
			roots = append(roots, n)
		}
	}
	return roots
}

// add creates a brand-new real node for (x, v), registers it, and
// returns it. It never checks for an existing entry — callers are
// responsible for that; find-or-add / add-or-update semantics live at
// the call sites that need them.
func (t *Tree) add(x amrvertex.Id, v amrvertex.Value) *Node {
	n := &Node{Vertex: x, Value: v}
	t.nodes[x] = n
	return n
}

// link makes y a child of x: sets y's parent relation, y's
// construction-time scratch pointer (used as compressed-parent during
// build — see findRoot), and appends y to x's children.
func link(x, y *Node) {
	y.Parent = x
	y.aux = x
	x.Children = append(x.Children, y)
}

// findRoot follows a chain of aux pointers (used during construction as
// a union-find "compressed parent") to its end, path-compressing along
// the way. It is unrelated to disjointset.DisjointSets.Find — this is a
// purely local, per-tree-construction shortcut over Node.aux.
func findRoot(n *Node) *Node {
	res := n
	for res.aux != nil {
		res = res.aux
	}
	up := n.aux
	for up != nil {
		n.aux = res
		n = up
		up = n.aux
	}
	return res
}

// resetAux clears the scratch slot on every live real node. Compute,
// Merge, Sparsify and SparsifyInto call this before returning so a
// later traversal never observes a stale construction-time pointer.
func (t *Tree) resetAux() {
	for k, n := range t.nodes {
		if k == n.Vertex {
			n.aux = nil
		}
	}
}
