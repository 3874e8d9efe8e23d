package mergetree

import "github.com/katalvlaran/amrmerge/amrvertex"

// Special decides whether a vertex is semantically important enough
// that sparsification must keep the path from the forest root down to
// it.
type Special func(amrvertex.Id) bool

// Sparsify prunes, in place, every subtree of t that contains no
// special vertex. A root with no children at all (an isolated
// critical point — a local extremum with nothing merging into or out
// of it) is always kept regardless of specialness; a root that does
// have children but ends up with none surviving (no special vertex
// anywhere under it) is dropped entirely.
//
// Sparsify is idempotent: sparsifying an already-sparsified tree is a
// no-op, since every surviving node's subtree contains a special vertex
// by construction.
//
// Complexity: O(V) time.
func Sparsify(t *Tree, special Special) {
	for _, root := range t.Roots() {
		if len(root.Children) == 0 {
			continue
		}
		keep := pruneSubtree(t, root, special)
		if !keep && len(root.Children) == 0 {
			removeNode(t, root)
		}
	}
	t.resetAux()
}

// pruneSubtree recursively keeps only children whose subtree contains a
// special vertex, deleting pruned subtrees from t, and reports whether
// n's own subtree (including n) contains a special vertex.
func pruneSubtree(t *Tree, n *Node, special Special) bool {
	keep := n.AnyVertex(special)
	var survivors []*Node
	for _, c := range n.Children {
		if pruneSubtree(t, c, special) {
			survivors = append(survivors, c)
			keep = true
		} else {
			removeSubtree(t, c)
		}
	}
	n.Children = survivors
	return keep
}

// removeSubtree deletes n and every descendant of n from t's node map.
func removeSubtree(t *Tree, n *Node) {
	for _, c := range n.Children {
		removeSubtree(t, c)
	}
	removeNode(t, n)
}

// removeNode deletes a single node's entry (and any plain-vertex aliases
// pointing at it) from t's node map.
func removeNode(t *Tree, n *Node) {
	delete(t.nodes, n.Vertex)
	for k, v := range t.nodes {
		if v == n {
			delete(t.nodes, k)
		}
	}
}

// SparsifyInto builds a fresh tree in out containing only the nodes of
// in that survive sparsification against special, leaving in untouched.
// out must be empty.
//
// Complexity: O(V) time, O(kept V) additional space.
func SparsifyInto(out *Tree, in *Tree, special Special) {
	mapping := make(map[amrvertex.Id]*Node, len(in.nodes))
	for _, root := range in.Roots() {
		if len(root.Children) == 0 {
			mapping[root.Vertex] = out.add(root.Vertex, root.Value)
			continue
		}
		if keep := copyPrunedSubtree(out, in, root, special, mapping); !keep {
			delete(mapping, root.Vertex)
		}
	}
	out.resetAux()
}

// copyPrunedSubtree mirrors pruneSubtree but builds new nodes in out
// instead of mutating in, wiring parent/child relations as it unwinds.
func copyPrunedSubtree(out *Tree, in *Tree, n *Node, special Special, mapping map[amrvertex.Id]*Node) bool {
	keep := n.AnyVertex(special)
	type kept struct {
		orig *Node
	}
	var survivors []kept
	for _, c := range n.Children {
		if copyPrunedSubtree(out, in, c, special, mapping) {
			survivors = append(survivors, kept{orig: c})
			keep = true
		}
	}
	if !keep {
		return false
	}

	newNode := out.add(n.Vertex, n.Value)
	newNode.Vertices = append(newNode.Vertices, n.Vertices...)
	mapping[n.Vertex] = newNode
	for _, s := range survivors {
		child := mapping[s.orig.Vertex]
		link(newNode, child)
	}
	return true
}
