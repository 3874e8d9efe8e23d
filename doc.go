// Package amrmerge computes merge trees and connected components of a
// scalar field over an Adaptive Mesh Refinement (AMR) grid, distributed
// across many logical blocks.
//
// Given a scalar field f over a union of rectangular boxes at multiple
// refinement levels, and a threshold rho, the engine produces a global
// topological description of the super-level (or sub-level) set
// {x : f(x) >= rho}: for each maximal connected component, its deepest
// vertex, and the saddles at which components merge.
//
// The module is organized bottom-up:
//
//	amrvertex/   — AmrVertexId / Value ordering primitives
//	disjointset/ — union-find keyed by AmrVertexId
//	mergetree/   — build / sparsify / degree-2 contraction / merge / persistence
//	maskedbox/   — rectangular box, per-cell mask, initial cross-block edges
//	component/   — per-block tentative connected-component state
//	block/       — the per-partition connected-component state machine
//	coordinator/ — the bulk-synchronous round driver
//	amrio/       — grid reader, link provider and exchange interfaces
//	config/      — functional options + viper-backed loader
//	logx/        — structured leveled logging
//	telemetry/   — OpenTelemetry round tracing
//	serialize/   — length-prefixed binary block codec
//	checkpoint/  — pluggable save/load store (local disk, Tencent COS)
//	cmd/amrmerge/ — a cobra CLI exercising the whole pipeline on synthetic fixtures
//
// This package intentionally carries no exported API of its own; it is a
// landing page for the package documentation above.
package amrmerge
