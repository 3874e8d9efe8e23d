package amrio

import "errors"

var (
	// ErrGridReadFailure indicates the external reader could not supply
	// the requested bounds.
	ErrGridReadFailure = errors.New("amrio: grid reader could not supply requested bounds")
	// ErrUnknownGid is returned when a link or exchange operation names
	// a gid this provider has no record of.
	ErrUnknownGid = errors.New("amrio: unknown gid")
)
