// Package amrvertex defines the vertex identity and scalar-value ordering
// shared by every other package in github.com/katalvlaran/amrmerge.
//
// An AMR grid is a union of rectangular boxes at multiple refinement
// levels; a vertex is addressed by the box that owns it (its gid) and a
// linear offset inside that box. Vertex identity never crosses a box
// boundary by pointer — only by value — so AmrVertexId is a plain,
// comparable struct that can be used as a map key, sorted, and shipped
// across block boundaries.
//
// Deepness is the total order every algorithm in this module sorts and
// compares by: it is "larger value wins" unless Negate is set, in which
// case "smaller value wins"; ties are broken by AmrVertexId so the order
// is always total, never merely partial.
package amrvertex
