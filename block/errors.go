package block

import "errors"

// ErrUnknownComponent is returned by lookups keyed on a component's
// OriginalDeepest vertex that this block never created — a protocol
// invariant violation: a message named a component this block has no
// record of.
var ErrUnknownComponent = errors.New("block: no component with that original-deepest vertex")
