// Package block implements the per-partition connected-component
// state machine: building the local merge tree and initial components,
// then running the send/receive/adjust/terminate round cycle against
// an external bulk-synchronous driver. It is grounded on
// FabComponentBlock (gid, local_, disjoint_sets_, components_,
// gid_to_outgoing_edges_, new_receivers_/processed_receivers_, round_,
// done_), generalized away from its single-pass-constructor C++ shape
// into explicit Init/Round methods a caller drives directly.
package block
