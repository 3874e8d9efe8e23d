package mergetree

import (
	"sort"

	"github.com/katalvlaran/amrmerge/amrvertex"
)

// Redistribute pushes collapsed "plain" vertices as far up the tree as
// the deepness order allows: a supernode's vertex stays there if it is
// no deeper than the supernode's parent (or the supernode is a root);
// anything strictly deeper than the parent is handed up to it,
// cascading level by level in one post-order pass.
//
// Complexity: O(V log V) (per-node sort of a typically small Vertices
// slice).
func Redistribute(t *Tree) {
	for _, root := range t.Roots() {
		redistributeNode(t.Negate, root)
	}
}

func redistributeNode(negate bool, n *Node) {
	for _, c := range n.Children {
		redistributeNode(negate, c)
	}
	if len(n.Vertices) == 0 {
		return
	}

	sort.Slice(n.Vertices, func(i, j int) bool {
		return n.Vertices[i].Id.Less(n.Vertices[j].Id)
	})
	deduped := n.Vertices[:0:0]
	for i, vv := range n.Vertices {
		if i == 0 || vv.Id != n.Vertices[i-1].Id {
			deduped = append(deduped, vv)
		}
	}

	keep := deduped[:0:0]
	for _, vv := range deduped {
		if n.Parent != nil && amrvertex.Order(negate, vv, n.Parent.ValueId()) {
			n.Parent.Vertices = append(n.Parent.Vertices, vv)
		} else {
			keep = append(keep, vv)
		}
	}
	n.Vertices = keep
}
