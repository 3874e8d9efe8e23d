// Package maskedbox models a rectangular index region at one AMR
// refinement level together with a per-cell classification mask
// (ACTIVE, LOW, GHOST, COVERED), mirroring the box/mask abstraction
// fab-cc-block.h builds on top of reeber's masked-box.h. The
// Go shape, constructor validation, and row-major indexing here follow
// gridgraph's GridGraph (github.com/katalvlaran/lvlath/gridgraph):
// deep-copy the input, validate rectangularity, precompute neighbour
// offsets, expose Rect.Contains/index/Coordinate helpers.
package maskedbox
