package mergetree

import "github.com/katalvlaran/amrmerge/amrvertex"

// AddForTest and LinkForTest expose the package's internal node
// construction to the external mergetree_test package, the same
// export_test.go pattern used across the Go standard library for
// testing unexported behavior from a black-box test package.

func (t *Tree) AddForTest(v amrvertex.Id, val amrvertex.Value) *Node {
	return t.add(v, val)
}

func (t *Tree) LinkForTest(parent, child *Node) {
	link(parent, child)
}
