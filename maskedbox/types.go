package maskedbox

import "github.com/katalvlaran/amrmerge/amrvertex"

// Mask classifies a single cell of a Box's bounds.
type Mask uint8

const (
	// Unknown marks a cell not yet classified; a finished Box never
	// exposes Unknown through Get.
	Unknown Mask = iota
	// Active marks a core cell that participates in the current
	// super-/sub-level set.
	Active
	// Low marks a core cell below (or above, when negated) threshold.
	Low
	// Ghost marks a ghost-ring cell owned by a same-level neighbour.
	Ghost
	// Covered marks a ghost-ring cell shadowed by a finer-level box.
	Covered
)

func (m Mask) String() string {
	switch m {
	case Active:
		return "ACTIVE"
	case Low:
		return "LOW"
	case Ghost:
		return "GHOST"
	case Covered:
		return "COVERED"
	default:
		return "UNKNOWN"
	}
}

// ThresholdMode selects how a Box's ACTIVE/LOW split is determined.
type ThresholdMode int

const (
	// Absolute takes the threshold as given at construction time.
	Absolute ThresholdMode = iota
	// Relative defers the ACTIVE/LOW split until FinalizeRelative is
	// called with a threshold derived from a global reduction.
	Relative
)

// Rect is a half-open 2D index range [X0,X1) x [Y0,Y1), following
// gridgraph's row-major (Width, Height) convention.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Width returns X1-X0.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns Y1-Y0.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Contains reports whether (x,y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// NeighborLevel distinguishes a link neighbour at the same refinement
// level from one that is finer (and therefore covers this box's ghost
// cells rather than sharing them).
type NeighborLevel int

const (
	// SameLevel neighbours share a GHOST ring with this box.
	SameLevel NeighborLevel = iota
	// Finer neighbours COVER this box's corresponding ghost cells.
	Finer
)

// LinkNeighbor describes one neighbouring block from the partitioning
// framework's link description.
type LinkNeighbor struct {
	Gid   int
	Level NeighborLevel
	// Core is the neighbour's core rectangle in the same global index
	// space this box's Core/Bounds are expressed in.
	Core Rect
}

// Link is the full neighbour list for one box.
type Link struct {
	Neighbors []LinkNeighbor
}

// AmrEdge is an unordered cross-block adjacency.
type AmrEdge struct {
	U, V amrvertex.Id
}

// EdgeBucket groups AmrEdges by the gid of their remote endpoint, for
// targeted per-round transmission.
type EdgeBucket map[int][]AmrEdge
