package block_test

import (
	"testing"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/block"
	"github.com/katalvlaran/amrmerge/maskedbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(gid, off int) amrvertex.Id { return amrvertex.Id{Gid: gid, Offset: off} }

// twoAdjacentBoxes builds a pair of 2x2 boxes side by side (A's core at
// x:[0,2), B's core at x:[2,4), both y:[0,2)), field f(x,y)=x+y,
// threshold 2 non-negated. A has a single ACTIVE core cell ((1,1)=2);
// B's whole core is ACTIVE and fully connected, so each box produces
// exactly one local component, joined by one cross-boundary edge pair.
func twoAdjacentBoxes(t *testing.T) (a, b *maskedbox.Box) {
	t.Helper()

	coreA := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}
	coreB := maskedbox.Rect{X0: 2, Y0: 0, X1: 4, Y1: 2}

	boundsA := maskedbox.Rect{X0: 0, Y0: 0, X1: 3, Y1: 2}
	boundsB := maskedbox.Rect{X0: 1, Y0: 0, X1: 4, Y1: 2}

	// Ghost columns carry the same values as the neighbour's true core
	// cells there, mirroring how a partitioning framework fills ghost
	// data from the owning box.
	valuesA := [][]amrvertex.Value{
		{0, 1, 2}, // y=0: x=0,1,2(ghost, mirrors B's (2,0)=2)
		{1, 2, 3}, // y=1: x=0,1,2(ghost, mirrors B's (2,1)=3)
	}
	valuesB := [][]amrvertex.Value{
		{1, 2, 3}, // y=0: x=1(ghost, mirrors A's (1,0)=1),2,3
		{2, 3, 4}, // y=1: x=1(ghost, mirrors A's (1,1)=2),2,3
	}

	linkA := maskedbox.Link{Neighbors: []maskedbox.LinkNeighbor{
		{Gid: 1, Level: maskedbox.SameLevel, Core: coreB},
	}}
	linkB := maskedbox.Link{Neighbors: []maskedbox.LinkNeighbor{
		{Gid: 0, Level: maskedbox.SameLevel, Core: coreA},
	}}

	var err error
	a, err = maskedbox.New(0, 0, coreA, boundsA, valuesA, linkA, false, maskedbox.Absolute, 2)
	require.NoError(t, err)
	b, err = maskedbox.New(1, 0, coreB, boundsB, valuesB, linkB, false, maskedbox.Absolute, 2)
	require.NoError(t, err)
	return a, b
}

func TestInit_OneComponentPerLocalRoot(t *testing.T) {
	boxA, boxB := twoAdjacentBoxes(t)

	blockA := block.New(0, false, false)
	blockA.Init(boxA)
	require.Len(t, blockA.Components, 1)
	assert.Equal(t, vid(0, 3), blockA.Components[0].OriginalDeepest)
	assert.Equal(t, amrvertex.Value(2), blockA.Components[0].OriginalValue)
	require.Len(t, blockA.Components[0].OutgoingEdges, 1)
	assert.Equal(t, vid(1, 2), blockA.Components[0].OutgoingEdges[0].V)

	blockB := block.New(1, false, false)
	blockB.Init(boxB)
	require.Len(t, blockB.Components, 1)
	assert.Equal(t, vid(1, 3), blockB.Components[0].OriginalDeepest)
	assert.Equal(t, amrvertex.Value(4), blockB.Components[0].OriginalValue)
	require.Len(t, blockB.Components[0].OutgoingEdges, 1)
	assert.Equal(t, vid(0, 3), blockB.Components[0].OutgoingEdges[0].V)
}

func TestRound_ConvergesToSharedDeepest(t *testing.T) {
	boxA, boxB := twoAdjacentBoxes(t)

	blockA := block.New(0, false, false)
	blockA.Init(boxA)
	blockB := block.New(1, false, false)
	blockB.Init(boxB)

	outA1 := blockA.Round(nil)
	outB1 := blockB.Round(nil)
	require.Len(t, outA1[1], 1)
	require.Len(t, outB1[0], 1)
	assert.False(t, blockA.LocalDone())
	assert.False(t, blockB.LocalDone())

	outA2 := blockA.Round(outB1[0])
	outB2 := blockB.Round(outA1[1])

	assert.Equal(t, vid(1, 3), blockA.Components[0].GlobalDeepest)
	assert.Equal(t, amrvertex.Value(4), blockA.Components[0].GlobalValue)
	assert.Equal(t, vid(1, 3), blockB.Components[0].GlobalDeepest)
	assert.Equal(t, amrvertex.Value(4), blockB.Components[0].GlobalValue)
	assert.Empty(t, outA2[1])
	assert.Empty(t, outB2[0])

	outA3 := blockA.Round(outB2[0])
	outB3 := blockB.Round(outA2[1])
	assert.True(t, blockA.LocalDone())
	assert.True(t, blockB.LocalDone())
	assert.Empty(t, outA3)
	assert.Empty(t, outB3)
}

func TestComponentByOriginalDeepest_UnknownReturnsError(t *testing.T) {
	boxA, _ := twoAdjacentBoxes(t)
	blockA := block.New(0, false, false)
	blockA.Init(boxA)

	_, err := blockA.ComponentByOriginalDeepest(vid(9, 9))
	assert.ErrorIs(t, err, block.ErrUnknownComponent)

	c, err := blockA.ComponentByOriginalDeepest(vid(0, 3))
	require.NoError(t, err)
	assert.Equal(t, vid(0, 3), c.OriginalDeepest)
}

func TestDeepestVertices_SortedByOriginalDeepest(t *testing.T) {
	boxA, _ := twoAdjacentBoxes(t)
	blockA := block.New(0, false, false)
	blockA.Init(boxA)

	got := blockA.DeepestVertices()
	require.Len(t, got, 1)
	assert.Equal(t, vid(0, 3), got[0])
}
