package mergetree

import (
	"sort"

	"github.com/katalvlaran/amrmerge/amrvertex"
)

// Topology supplies the vertex set and adjacency (link) a merge tree is
// built over — the box's ACTIVE vertices and their grid neighbours.
type Topology interface {
	Vertices() []amrvertex.Id
	Link(u amrvertex.Id) []amrvertex.Id
}

// Function evaluates the scalar field at a vertex.
type Function func(amrvertex.Id) amrvertex.Value

// Collapsible decides whether a vertex may be absorbed as a plain
// vertex into a single-root supernode instead of becoming a real node.
type Collapsible func(amrvertex.Id) bool

// Compute builds t from topology, f and collapsible: process vertices
// deepest-last, link each one to the roots its neighbours already
// belong to (collapsing it into a lone root when it's allowed to stay
// plain), then clean up shortcuts and optionally pull each root's
// deepest plain vertex back out as a real node (gated by preserve). t
// must be empty; Compute does not clear a non-empty tree.
//
// Complexity: O(V log V + E·α(V)) — a sort over vertices, one
// union-find findRoot per (vertex, link-neighbour) pair.
func Compute(t *Tree, topology Topology, f Function, collapsible Collapsible, preserve bool) {
	verts := topology.Vertices()
	items := make([]amrvertex.ValueId, len(verts))
	for i, v := range verts {
		items[i] = amrvertex.ValueId{Value: f(v), Id: v}
	}

	// Process from shallowest to deepest so the last unlinked node is
	// the deepest overall and becomes the forest's root (per component).
	sort.Slice(items, func(i, j int) bool {
		return amrvertex.Order(t.Negate, items[j], items[i])
	})

	for _, fu := range items {
		u := fu.Id

		rootSet := make(map[*Node]struct{})
		for _, v := range topology.Link(u) {
			if n, ok := t.nodes[v]; ok {
				rootSet[findRoot(n)] = struct{}{}
			}
		}
		roots := make([]*Node, 0, len(rootSet))
		for r := range rootSet {
			roots = append(roots, r)
		}
		sort.Slice(roots, func(i, j int) bool { return roots[i].Vertex.Less(roots[j].Vertex) })

		if len(roots) == 1 && collapsible(u) {
			root := roots[0]
			if preserve {
				root.Vertices = append(root.Vertices, fu)
			}
			t.nodes[u] = root
		} else {
			uNode := t.add(u, fu.Value)
			for _, r := range roots {
				link(uNode, r)
			}
		}
	}

	// Clean up: drop plain-vertex shortcuts, reset aux, collect roots.
	for k, n := range t.nodes {
		if k != n.Vertex {
			delete(t.nodes, k)
		}
	}
	t.resetAux()

	if preserve {
		for _, root := range t.Roots() {
			pullOutRoot(t, root)
		}
	}
}

// pullOutRoot promotes the deepest plain vertex collapsed into root's
// Vertices to a brand-new real root above root, and root becomes that
// new root's sole child.
func pullOutRoot(t *Tree, root *Node) {
	if len(root.Vertices) == 0 {
		return
	}
	best := 0
	for i := 1; i < len(root.Vertices); i++ {
		if amrvertex.Order(t.Negate, root.Vertices[i], root.Vertices[best]) {
			best = i
		}
	}
	deepest := root.Vertices[best]
	root.Vertices = append(root.Vertices[:best], root.Vertices[best+1:]...)

	newRoot := t.add(deepest.Id, deepest.Value)
	root.Parent = newRoot
	newRoot.Children = append(newRoot.Children, root)
}
