// Package mergetree implements the local merge tree: build, sparsify
// (in-place and new-tree forms), degree-2 contraction, multi-tree
// merge, persistence traversal, and vertex redistribution, as an
// idiomatic Go shape: a strict tree (child slice + parent
// back-pointer, the back-pointer is a relation, never used for
// ownership) plus a single *Node scratch slot (Node.aux) that Compute,
// Merge and both sparsify forms repurpose and reset.
//
// Every tree operation is parameterised by a negate flag carried on the
// Tree itself (see amrvertex.Order): deepness, not raw Value, is what
// every comparison in this package means.
package mergetree
