package maskedbox

import "errors"

// Sentinel errors for maskedbox construction and lookups.
var (
	// ErrEmptyBox indicates a box with zero rows or zero columns.
	ErrEmptyBox = errors.New("maskedbox: box must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths in the input values.
	ErrNonRectangular = errors.New("maskedbox: all rows must have the same length")
	// ErrUnknownNeighborGid indicates the ghost ring references a gid
	// absent from the supplied link description — a mask consistency
	// violation.
	ErrUnknownNeighborGid = errors.New("maskedbox: ghost cell references gid absent from link")
	// ErrCoreUnclassified indicates a core cell was left Unknown after
	// mask construction — a mask consistency violation.
	ErrCoreUnclassified = errors.New("maskedbox: core cell unclassified after mask construction")
	// ErrOutOfBounds indicates a coordinate outside the box's bounds.
	ErrOutOfBounds = errors.New("maskedbox: coordinate out of bounds")
)
