package maskedbox

import "github.com/katalvlaran/amrmerge/amrvertex"

// Box is a rectangular index region at one refinement level, with a
// per-cell Mask over its ghosted bounds and the scalar field values
// backing that mask. It is immutable once finalized, following
// gridgraph.GridGraph's deep-copy-and-validate construction discipline.
type Box struct {
	Gid, Level int
	Core       Rect
	Bounds     Rect
	negate     bool
	mode       ThresholdMode
	threshold  amrvertex.Value
	finalized  bool

	values       [][]amrvertex.Value // [y-Bounds.Y0][x-Bounds.X0]
	mask         []Mask              // row-major over Bounds
	ghostRemote  []amrvertex.Id      // parallel to mask; valid for Ghost/Covered cells
}

// New validates and constructs a Box. values must be rectangular and
// must cover exactly bounds.Height() rows of bounds.Width() columns.
// For Absolute mode, threshold is applied immediately and the mask is
// fully classified on return. For Relative mode, every core cell is
// tentatively marked Active and FinalizeRelative must be called before
// the box is used for merge-tree construction or edge enumeration.
//
// Complexity: O(Width x Height).
func New(gid, level int, core, bounds Rect, values [][]amrvertex.Value, link Link, negate bool, mode ThresholdMode, threshold amrvertex.Value) (*Box, error) {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return nil, ErrEmptyBox
	}
	if len(values) != bounds.Height() {
		return nil, ErrNonRectangular
	}
	for _, row := range values {
		if len(row) != bounds.Width() {
			return nil, ErrNonRectangular
		}
	}

	cp := make([][]amrvertex.Value, bounds.Height())
	for i, row := range values {
		cp[i] = append([]amrvertex.Value(nil), row...)
	}

	b := &Box{
		Gid: gid, Level: level,
		Core: core, Bounds: bounds,
		negate: negate, mode: mode, threshold: threshold,
		values:      cp,
		mask:        make([]Mask, bounds.Width()*bounds.Height()),
		ghostRemote: make([]amrvertex.Id, bounds.Width()*bounds.Height()),
	}

	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			idx := b.boundsIndex(x, y)
			if core.Contains(x, y) {
				if mode == Absolute {
					b.mask[idx] = classify(b.valueAt(x, y), threshold, negate)
				} else {
					b.mask[idx] = Active // tentative, pending FinalizeRelative
				}
				continue
			}

			n, ok := findNeighbor(link, x, y)
			if !ok {
				return nil, ErrUnknownNeighborGid
			}
			remoteOffset := (y-n.Core.Y0)*n.Core.Width() + (x - n.Core.X0)
			b.ghostRemote[idx] = amrvertex.Id{Gid: n.Gid, Offset: remoteOffset}
			if n.Level == Finer {
				b.mask[idx] = Covered
			} else {
				b.mask[idx] = Ghost
			}
		}
	}

	if mode == Absolute {
		b.finalized = true
	}
	if err := b.checkCoreClassified(); err != nil {
		return nil, err
	}
	return b, nil
}

// Restore reconstructs a finalized Box directly from previously
// classified state, bypassing New's classification pass — the
// deserialization counterpart of RawMask/RawValues/RawGhostRemote, for
// restoring a checkpointed block without re-reading the grid.
func Restore(gid, level int, core, bounds Rect, negate bool, mode ThresholdMode, threshold amrvertex.Value, values [][]amrvertex.Value, mask []Mask, ghostRemote []amrvertex.Id) *Box {
	return &Box{
		Gid: gid, Level: level,
		Core: core, Bounds: bounds,
		negate: negate, mode: mode, threshold: threshold, finalized: true,
		values:      values,
		mask:        mask,
		ghostRemote: ghostRemote,
	}
}

func findNeighbor(link Link, x, y int) (LinkNeighbor, bool) {
	for _, n := range link.Neighbors {
		if n.Core.Contains(x, y) {
			return n, true
		}
	}
	return LinkNeighbor{}, false
}

func classify(v, threshold amrvertex.Value, negate bool) Mask {
	if activeByValue(v, threshold, negate) {
		return Active
	}
	return Low
}

func activeByValue(v, threshold amrvertex.Value, negate bool) bool {
	if negate {
		return v <= threshold
	}
	return v >= threshold
}

func (b *Box) checkCoreClassified() error {
	for y := b.Core.Y0; y < b.Core.Y1; y++ {
		for x := b.Core.X0; x < b.Core.X1; x++ {
			if b.mask[b.boundsIndex(x, y)] == Unknown {
				return ErrCoreUnclassified
			}
		}
	}
	return nil
}

func (b *Box) boundsIndex(x, y int) int {
	return (y-b.Bounds.Y0)*b.Bounds.Width() + (x - b.Bounds.X0)
}

func (b *Box) coreIndex(x, y int) int {
	return (y-b.Core.Y0)*b.Core.Width() + (x - b.Core.X0)
}

func (b *Box) valueAt(x, y int) amrvertex.Value {
	return b.values[y-b.Bounds.Y0][x-b.Bounds.X0]
}

// Stats sums the current field value over every tentatively-active
// core cell, as this block's share of the relative-threshold global
// mean. Nothing in this module sums the per-block pairs: the caller
// adds them up and passes the mean to FinalizeRelative. Meaningful before
// FinalizeRelative; afterward it still reports over all core cells.
func (b *Box) Stats() (sum amrvertex.Value, n int) {
	for y := b.Core.Y0; y < b.Core.Y1; y++ {
		for x := b.Core.X0; x < b.Core.X1; x++ {
			sum += b.valueAt(x, y)
			n++
		}
	}
	return sum, n
}

// FinalizeRelative applies the globally-reduced threshold rho to every
// core cell, demoting any cell below threshold from tentative Active
// to Low. It is a no-op error to call this on an Absolute-mode or
// already-finalized Box.
func (b *Box) FinalizeRelative(rho amrvertex.Value) error {
	if b.mode != Relative || b.finalized {
		return ErrCoreUnclassified
	}
	b.threshold = rho
	for y := b.Core.Y0; y < b.Core.Y1; y++ {
		for x := b.Core.X0; x < b.Core.X1; x++ {
			idx := b.boundsIndex(x, y)
			if !activeByValue(b.valueAt(x, y), rho, b.negate) {
				b.mask[idx] = Low
			}
		}
	}
	b.finalized = true
	return nil
}

// Get returns the mask classification at (x,y).
func (b *Box) Get(x, y int) (Mask, error) {
	if !b.Bounds.Contains(x, y) {
		return Unknown, ErrOutOfBounds
	}
	return b.mask[b.boundsIndex(x, y)], nil
}

// VertexAt returns the AmrVertexId for a core cell.
func (b *Box) VertexAt(x, y int) amrvertex.Id {
	return amrvertex.Id{Gid: b.Gid, Offset: b.coreIndex(x, y)}
}

// Coordinate inverts VertexAt for a vertex owned by this box.
func (b *Box) Coordinate(v amrvertex.Id) (x, y int, ok bool) {
	if v.Gid != b.Gid {
		return 0, 0, false
	}
	w := b.Core.Width()
	return b.Core.X0 + v.Offset%w, b.Core.Y0 + v.Offset/w, true
}

// Value returns the field value at v, for a vertex owned by this box.
func (b *Box) Value(v amrvertex.Id) (amrvertex.Value, bool) {
	x, y, ok := b.Coordinate(v)
	if !ok {
		return 0, false
	}
	return b.valueAt(x, y), true
}

var fourConn = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// IsCoreBoundary reports whether v's cell has any neighbour outside
// the core — the collapsible(u) predicate used by the local merge
// tree is simply `!b.IsCoreBoundary(v)`, since a boundary cell must
// stay a real node for the cross-block protocol to address it.
func (b *Box) IsCoreBoundary(v amrvertex.Id) bool {
	x, y, ok := b.Coordinate(v)
	if !ok {
		return false
	}
	for _, d := range fourConn {
		if !b.Core.Contains(x+d[0], y+d[1]) {
			return true
		}
	}
	return false
}

// Vertices returns every Active core vertex, implementing
// mergetree.Topology alongside Link.
func (b *Box) Vertices() []amrvertex.Id {
	var out []amrvertex.Id
	for y := b.Core.Y0; y < b.Core.Y1; y++ {
		for x := b.Core.X0; x < b.Core.X1; x++ {
			if b.mask[b.boundsIndex(x, y)] == Active {
				out = append(out, b.VertexAt(x, y))
			}
		}
	}
	return out
}

// Link returns u's Active same-box neighbours, implementing
// mergetree.Topology. Cross-block adjacency is never returned here —
// see InitialEdges.
func (b *Box) Link(u amrvertex.Id) []amrvertex.Id {
	x, y, ok := b.Coordinate(u)
	if !ok {
		return nil
	}
	var out []amrvertex.Id
	for _, d := range fourConn {
		nx, ny := x+d[0], y+d[1]
		if b.Core.Contains(nx, ny) && b.mask[b.boundsIndex(nx, ny)] == Active {
			out = append(out, b.VertexAt(nx, ny))
		}
	}
	return out
}

// RawMask returns a copy of the row-major mask over Bounds, for
// serialization — the mask is part of a block's serializable state.
func (b *Box) RawMask() []Mask {
	return append([]Mask(nil), b.mask...)
}

// RawValues returns a copy of the field values over Bounds, one row
// per Bounds.Height(), one column per Bounds.Width().
func (b *Box) RawValues() [][]amrvertex.Value {
	cp := make([][]amrvertex.Value, len(b.values))
	for i, row := range b.values {
		cp[i] = append([]amrvertex.Value(nil), row...)
	}
	return cp
}

// RawGhostRemote returns a copy of the ghost-to-remote-vertex side
// table, parallel to RawMask.
func (b *Box) RawGhostRemote() []amrvertex.Id {
	return append([]amrvertex.Id(nil), b.ghostRemote...)
}

// Negate reports this box's deepness direction.
func (b *Box) Negate() bool { return b.negate }

// Mode reports this box's threshold mode.
func (b *Box) Mode() ThresholdMode { return b.mode }

// Threshold reports this box's currently effective threshold (the
// configured value for Absolute mode, or the finalized rho for
// Relative mode once FinalizeRelative has run).
func (b *Box) Threshold() amrvertex.Value { return b.threshold }

// InitialEdges enumerates cross-block adjacency from this box's core
// boundary to its link neighbours, bucketed by remote gid. Covered
// (finer-level) ghost cells never contribute — the finer block owns
// that territory, so a coarse block's covered cells never seed an
// edge.
//
// Complexity: O(core boundary perimeter).
func (b *Box) InitialEdges() EdgeBucket {
	out := make(EdgeBucket)
	for y := b.Core.Y0; y < b.Core.Y1; y++ {
		for x := b.Core.X0; x < b.Core.X1; x++ {
			if b.mask[b.boundsIndex(x, y)] != Active {
				continue
			}
			u := b.VertexAt(x, y)
			for _, d := range fourConn {
				nx, ny := x+d[0], y+d[1]
				if !b.Bounds.Contains(nx, ny) || b.Core.Contains(nx, ny) {
					continue
				}
				idx := b.boundsIndex(nx, ny)
				if b.mask[idx] != Ghost {
					continue // Covered or Unknown never contribute
				}
				if !activeByValue(b.valueAt(nx, ny), b.threshold, b.negate) {
					continue
				}
				remote := b.ghostRemote[idx]
				out[remote.Gid] = append(out[remote.Gid], AmrEdge{U: u, V: remote})
			}
		}
	}
	return out
}
