// Package disjointset implements union-find over amrvertex.Id, grounded
// on the path-compressed, union-by-rank disjoint set built inline in
// lvlath/prim_kruskal.Kruskal — generalised here to a reusable, generic
// structure and to the protocol's deepness-based union rule.
//
// Unlike a classic union-by-rank DSU, the representative of a merged
// class is never chosen by rank or size: it is always the deeper of the
// two vertices under amrvertex.Order. Rank is still tracked as a
// compression heuristic, but it never overrides the deepness rule —
// the protocol's correctness depends on Find(v) returning the globally
// deepest vertex of v's component.
package disjointset
