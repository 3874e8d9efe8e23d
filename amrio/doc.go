// Package amrio defines the three external collaborator interfaces a
// merge run needs — the grid reader, the partitioning/link framework,
// and the inter-block exchange primitive — plus in-memory reference
// implementations suitable for tests and single-process runs. The
// interface shapes follow gridgraph's validate-then-construct style
// (sentinel errors; inputs are kept by reference, not copied); the
// reference Exchange is
// grounded on a bulk-synchronous "drain outbox, deliver inbox" driver
// model.
package amrio
