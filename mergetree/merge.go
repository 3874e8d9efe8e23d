package mergetree

import (
	"sort"

	"github.com/katalvlaran/amrmerge/amrvertex"
)

// Edges supplies extra cross-tree adjacency that Merge should fold in
// alongside each input tree's own parent/child structure — used to
// merge trees across a cross-block AmrEdge.
type Edges func(amrvertex.Id) []amrvertex.Id

// NoEdges is an Edges that contributes no additional adjacency, for
// callers merging trees that are already fully linked by their own
// child structure.
func NoEdges(amrvertex.Id) []amrvertex.Id { return nil }

// Merge combines several already-built local trees into mt, which must
// be empty. Nodes are processed shallowest-to-deepest (the same order
// Compute uses), re-using each node's scratch slot as a per-merge
// union-find compressed-parent, exactly like Compute does.
//
// Merge is idempotent: merging the same set of trees twice into two
// fresh destinations yields isomorphic results, since node order and
// linking rules are both deterministic given the same inputs.
//
// Complexity: O(V log V + E·α(V)).
func Merge(mt *Tree, trees []*Tree, edges Edges) {
	type srcNode struct {
		node *Node
	}
	var all []srcNode
	for _, tr := range trees {
		for k, n := range tr.nodes {
			if k == n.Vertex {
				all = append(all, srcNode{node: n})
			}
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return amrvertex.Order(mt.Negate, all[j].node.ValueId(), all[i].node.ValueId())
	})

	for _, s := range all {
		n := s.node
		var nn *Node
		if existing, ok := mt.nodes[n.Vertex]; ok {
			nn = existing
		} else {
			nn = mt.add(n.Vertex, n.Value)
			nn.Vertices = append(nn.Vertices, n.Vertices...)
			for _, v := range edges(n.Vertex) {
				if cn, ok := mt.nodes[v]; ok {
					cnRoot := findRoot(cn)
					if cnRoot != nn {
						link(nn, cnRoot)
					}
				}
			}
		}

		for _, child := range n.Children {
			cn, ok := mt.nodes[child.Vertex]
			if !ok {
				continue
			}
			cnRoot := findRoot(cn)
			if cnRoot != nn {
				link(nn, cnRoot)
			}
		}
	}

	mt.resetAux()
}
