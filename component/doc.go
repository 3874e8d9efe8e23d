// Package component models the per-block tentative connected
// component of the merge protocol: a local root vertex, the current
// best known global root across blocks, and the sets of neighbour
// gids a component has and hasn't yet told about itself this round.
// It is grounded on FabComponentBlock's ConnectedComponent, translated
// from a long-lived mutable struct with C++-style debug flags into a
// small, side-effect-explicit Go type; the dead debug-flag parameter
// to init_current_neighbors is dropped rather than carried forward.
package component
