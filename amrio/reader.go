package amrio

import (
	"context"
	"fmt"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/maskedbox"
)

// GridReader fills buf with scalar field values over bounds, laid out
// row-major in the block's native axis order: given a discrete
// bounding box and an output buffer, the reader fills the buffer. buf
// must already be sized to bounds.Height() rows of bounds.Width()
// columns; ReadInto never reallocates it.
//
// Collective read mode is mandatory: implementations that front a
// distributed store must ensure every participant's read completes
// before any of them proceeds, since a block callback has no
// suspension points of its own to fall back on.
type GridReader interface {
	ReadInto(ctx context.Context, bounds maskedbox.Rect, buf [][]amrvertex.Value) error
}

// InMemoryReader serves reads from a fully materialized grid held in
// process memory — the reference implementation for tests and
// single-process runs.
type InMemoryReader struct {
	grid [][]amrvertex.Value // grid[y][x], origin at (0,0)
}

// NewInMemoryReader wraps grid for reading. grid must be rectangular;
// the caller retains ownership and must not mutate it concurrently
// with reads.
func NewInMemoryReader(grid [][]amrvertex.Value) (*InMemoryReader, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("amrio: %w: empty grid", ErrGridReadFailure)
	}
	width := len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("amrio: %w: non-rectangular grid", ErrGridReadFailure)
		}
	}
	return &InMemoryReader{grid: grid}, nil
}

// ReadInto implements GridReader.
func (r *InMemoryReader) ReadInto(ctx context.Context, bounds maskedbox.Rect, buf [][]amrvertex.Value) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	height := len(r.grid)
	width := len(r.grid[0])
	if bounds.X0 < 0 || bounds.Y0 < 0 || bounds.X1 > width || bounds.Y1 > height {
		return fmt.Errorf("amrio: %w: bounds %+v exceed grid %dx%d", ErrGridReadFailure, bounds, width, height)
	}
	if len(buf) != bounds.Height() {
		return fmt.Errorf("amrio: %w: output buffer has %d rows, want %d", ErrGridReadFailure, len(buf), bounds.Height())
	}

	for y := bounds.Y0; y < bounds.Y1; y++ {
		if len(buf[y-bounds.Y0]) != bounds.Width() {
			return fmt.Errorf("amrio: %w: output row %d has %d cols, want %d", ErrGridReadFailure, y-bounds.Y0, len(buf[y-bounds.Y0]), bounds.Width())
		}
		copy(buf[y-bounds.Y0], r.grid[y][bounds.X0:bounds.X1])
	}
	return nil
}
