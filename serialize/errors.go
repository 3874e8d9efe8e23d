package serialize

import (
	"errors"
	"fmt"
)

// formatVersion is bumped whenever the record layout changes
// incompatibly.
const formatVersion uint32 = 1

var magic = [4]byte{'A', 'M', 'R', 'B'}

// ErrBadMagic is returned by ReadBlock when the stream does not begin
// with the expected magic bytes.
var ErrBadMagic = errors.New("serialize: not an amrmerge block checkpoint")

// ErrVersionMismatch indicates a loaded block's layout version does
// not match what this build writes.
type ErrVersionMismatch struct {
	Found, Want uint32
}

func (e *ErrVersionMismatch) Error() string {
	return fmt.Sprintf("serialize: checkpoint version %d incompatible with this build's version %d", e.Found, e.Want)
}
