package coordinator

import "errors"

// ErrRoundLimitExceeded is returned when the round cap (WithMaxRounds)
// elapses
// without reaching global termination — a protocol invariant
// violation: the protocol converges in finitely many rounds over a
// finite graph, so running past the configured cap means a block is
// misbehaving (never reporting done) rather than the algorithm
// legitimately needing more time.
var ErrRoundLimitExceeded = errors.New("coordinator: round limit exceeded without reaching global termination")
