// Package coordinator drives a set of blocks through the
// bulk-synchronous round protocol: each round it calls every block's
// Round callback, hands the combined outgoing payloads to an
// amrio.Exchange, and delivers the returned messages as next round's
// incoming batch. It halts one round after every block simultaneously
// reports local termination, running one more message round to flush
// any in-flight state.
package coordinator
