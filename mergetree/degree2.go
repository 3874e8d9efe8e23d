package mergetree

import "github.com/katalvlaran/amrmerge/amrvertex"

// Preserve decides, during degree-2 contraction, whether a vertex being
// folded into a supernode's Vertices list is worth keeping at all.
type Preserve func(amrvertex.Id) bool

// RemoveDegree2 contracts every maximal chain of single-child,
// non-special nodes, folding the chain's own vertices (and any plain
// vertices they had already absorbed) into the surviving descendant's
// Vertices list, filtered by preserve. External topology — anything
// visible through a special vertex or a branch point — is unchanged.
//
// Complexity: O(V) time.
func RemoveDegree2(t *Tree, preserve Preserve, special Special) {
	for _, root := range t.Roots() {
		contractChildren(t, root, preserve, special)
	}
}

func contractChildren(t *Tree, n *Node, preserve Preserve, special Special) {
	for i, child := range n.Children {
		if len(child.Children) == 1 && !special(child.Vertex) {
			descendant := child.Children[0]
			for len(descendant.Children) == 1 && !special(descendant.Vertex) {
				descendant = descendant.Children[0]
			}

			cur := descendant.Parent
			for cur != n {
				if preserve(cur.Vertex) {
					descendant.Vertices = append(descendant.Vertices, amrvertex.ValueId{Value: cur.Value, Id: cur.Vertex})
				}
				for _, vv := range cur.Vertices {
					if preserve(vv.Id) {
						descendant.Vertices = append(descendant.Vertices, vv)
					}
				}
				next := cur.Parent
				delete(t.nodes, cur.Vertex)
				cur = next
			}

			descendant.Parent = n
			n.Children[i] = descendant
			contractChildren(t, descendant, preserve, special)
		} else {
			contractChildren(t, child, preserve, special)
		}
	}
}
