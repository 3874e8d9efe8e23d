package mergetree

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex that is
// not present in the tree. No function in this package returns it;
// Merge skips edges whose vertex is absent from every input
// tree.
var ErrVertexNotFound = errors.New("mergetree: vertex not found")

// ErrRootHasParent is a protocol invariant violation: a node believed
// to be a forest root was found to carry a parent, meaning the tree's
// topology invariant has diverged.
var ErrRootHasParent = errors.New("mergetree: root unexpectedly has a parent")
