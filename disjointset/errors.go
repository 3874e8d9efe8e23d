package disjointset

import "errors"

// ErrUnknownVertex indicates Find or Union was called on an amrvertex.Id
// that was never inserted via Insert. Callers (component, block) must
// insert a vertex's original_deepest before referencing it — seeing this
// error means the protocol state has diverged and is a programmer error,
// not a runtime condition a caller can retry past.
var ErrUnknownVertex = errors.New("disjointset: unknown vertex")
