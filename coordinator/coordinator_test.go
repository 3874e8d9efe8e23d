package coordinator_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/amrmerge/amrio"
	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/block"
	"github.com/katalvlaran/amrmerge/coordinator"
	"github.com/katalvlaran/amrmerge/maskedbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(gid, off int) amrvertex.Id { return amrvertex.Id{Gid: gid, Offset: off} }

// twoAdjacentBlocks mirrors block_test.go's twoAdjacentBoxes scenario:
// A's core has one ACTIVE cell at vid(0,3)=2; B's whole 2x2 core is
// ACTIVE and connected, deepest at vid(1,3)=4. The single cross-block
// edge should converge both components' GlobalDeepest to vid(1,3).
func twoAdjacentBlocks(t *testing.T) map[int]*block.Block {
	t.Helper()

	coreA := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}
	coreB := maskedbox.Rect{X0: 2, Y0: 0, X1: 4, Y1: 2}
	boundsA := maskedbox.Rect{X0: 0, Y0: 0, X1: 3, Y1: 2}
	boundsB := maskedbox.Rect{X0: 1, Y0: 0, X1: 4, Y1: 2}

	valuesA := [][]amrvertex.Value{
		{0, 1, 2},
		{1, 2, 3},
	}
	valuesB := [][]amrvertex.Value{
		{1, 2, 3},
		{2, 3, 4},
	}

	linkA := maskedbox.Link{Neighbors: []maskedbox.LinkNeighbor{
		{Gid: 1, Level: maskedbox.SameLevel, Core: coreB},
	}}
	linkB := maskedbox.Link{Neighbors: []maskedbox.LinkNeighbor{
		{Gid: 0, Level: maskedbox.SameLevel, Core: coreA},
	}}

	boxA, err := maskedbox.New(0, 0, coreA, boundsA, valuesA, linkA, false, maskedbox.Absolute, 2)
	require.NoError(t, err)
	boxB, err := maskedbox.New(1, 0, coreB, boundsB, valuesB, linkB, false, maskedbox.Absolute, 2)
	require.NoError(t, err)

	blockA := block.New(0, false, false)
	blockA.Init(boxA)
	blockB := block.New(1, false, false)
	blockB.Init(boxB)

	return map[int]*block.Block{0: blockA, 1: blockB}
}

func TestRun_ConvergesAndTerminates(t *testing.T) {
	blocks := twoAdjacentBlocks(t)
	c := coordinator.New(blocks, amrio.LocalExchange{}, coordinator.WithMaxRounds(10))

	result, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []amrvertex.Id{vid(1, 3)}, result[0])
	assert.Equal(t, []amrvertex.Id{vid(1, 3)}, result[1])
}

func TestRun_RoundLimitExceeded(t *testing.T) {
	blocks := twoAdjacentBlocks(t)
	c := coordinator.New(blocks, amrio.LocalExchange{}, coordinator.WithMaxRounds(1))

	_, err := c.Run(context.Background())
	assert.ErrorIs(t, err, coordinator.ErrRoundLimitExceeded)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { coordinator.WithLogger(nil) })
}
