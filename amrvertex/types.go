package amrvertex

import "fmt"

// Value is the scalar field type the whole engine is parameterised on.
// The module fixes it to float64 at compile time; the engine does not
// need runtime polymorphism over the real width.
type Value = float64

// Id is a pair (Gid, Offset): Gid identifies the owning block, Offset is
// a linear index inside that block's box. Id is totally ordered
// lexicographically (Gid first, then Offset) for tie-breaking.
type Id struct {
	Gid    int
	Offset int
}

// Less orders two ids lexicographically: Gid first, then Offset. Used as
// the tie-break in every deepness comparison below.
func (a Id) Less(b Id) bool {
	if a.Gid != b.Gid {
		return a.Gid < b.Gid
	}
	return a.Offset < b.Offset
}

// String renders "gid:offset", used in diagnostics and error messages.
func (a Id) String() string {
	return fmt.Sprintf("%d:%d", a.Gid, a.Offset)
}

// ValueId pairs a Value with its Id — the (Value, Vertex) pair used
// throughout merge-tree construction and sparsification.
type ValueId struct {
	Value Value
	Id    Id
}

// Order compares deepness: it reports whether a is strictly deeper than
// b under the given negate flag, breaking ties on Id: of two equal
// values, the one with the larger Id (under Less) is deeper, whatever
// negate is. "Deeper" means larger when negate is false, smaller when
// negate is true.
//
// All algorithms in this module call Order instead of comparing Value
// fields directly, so the negate flag only has to be threaded through
// once per call site.
func Order(negate bool, a, b ValueId) bool {
	if a.Value != b.Value {
		if negate {
			return a.Value < b.Value
		}
		return a.Value > b.Value
	}
	return b.Id.Less(a.Id)
}

// Deeper returns whichever of a, b is deeper under Order, a on ties.
func Deeper(negate bool, a, b ValueId) ValueId {
	if Order(negate, b, a) {
		return b
	}
	return a
}
