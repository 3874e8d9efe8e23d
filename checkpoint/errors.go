package checkpoint

import "errors"

// ErrNotFound is returned by FileStore.Load when a key has never been
// saved.
var ErrNotFound = errors.New("checkpoint: not found")
