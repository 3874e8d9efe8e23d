package mergetree

import "github.com/katalvlaran/amrmerge/amrvertex"

// Pair is a birth-death-persistence triple as produced by Traverse:
// Birth is the leaf where a branch begins, Saddle is the node where it
// merges into a deeper branch, and Death is the leaf of that deeper
// branch.
type Pair struct {
	Birth  amrvertex.Id
	Saddle amrvertex.Id
	Death  amrvertex.Id
}

// Traverse performs a two-pass persistence DFS: every internal node
// inherits the deepness of its deepest leaf descendant; every
// non-deepest child contributes a Pair naming that child's leaf, the
// current node as saddle, and the deepest child's leaf. Every root
// also yields a trivial Pair(leaf(r), r, leaf(r)).
//
// This is expressed as a plain recursive post-order walk rather than
// an explicit stack + Node.aux bookkeeping: the deepest leaf a subtree
// inherits is simply the recursive call's return value, so no scratch
// slot is needed here and nothing requires a reset.
//
// Complexity: O(V) time, O(depth) stack space.
func Traverse(t *Tree) []Pair {
	var pairs []Pair
	for _, root := range t.Roots() {
		leaf := traverseNode(t, root, &pairs)
		pairs = append(pairs, Pair{Birth: leaf.Vertex, Saddle: root.Vertex, Death: leaf.Vertex})
	}
	return pairs
}

func traverseNode(t *Tree, n *Node, pairs *[]Pair) *Node {
	if len(n.Children) == 0 {
		return n
	}

	leaves := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		leaves[i] = traverseNode(t, c, pairs)
	}

	deepestIdx := 0
	for i := 1; i < len(leaves); i++ {
		if amrvertex.Order(t.Negate, leaves[i].ValueId(), leaves[deepestIdx].ValueId()) {
			deepestIdx = i
		}
	}

	for i, leaf := range leaves {
		if i == deepestIdx {
			continue
		}
		*pairs = append(*pairs, Pair{Birth: leaf.Vertex, Saddle: n.Vertex, Death: leaves[deepestIdx].Vertex})
	}

	return leaves[deepestIdx]
}
