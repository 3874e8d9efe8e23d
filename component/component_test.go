package component_test

import (
	"testing"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/component"
	"github.com/katalvlaran/amrmerge/maskedbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(gid, off int) amrvertex.Id { return amrvertex.Id{Gid: gid, Offset: off} }

func TestSetEdges_FiltersByFindAndInitsNeighbors(t *testing.T) {
	root := vid(0, 0)
	c := component.New(root, 6)

	other := vid(0, 1)
	candidates := []maskedbox.AmrEdge{
		{U: root, V: vid(1, 3)},
		{U: other, V: vid(2, 4)}, // belongs to a different local component
	}
	find := func(v amrvertex.Id) amrvertex.Id {
		if v == root {
			return root
		}
		return vid(9, 9)
	}

	c.SetEdges(candidates, find)
	require.Len(t, c.OutgoingEdges, 1)
	assert.Equal(t, vid(1, 3), c.OutgoingEdges[0].V)
	_, ok := c.CurrentNeighbors[1]
	assert.True(t, ok)
	_, ok = c.CurrentNeighbors[2]
	assert.False(t, ok)
}

func TestIsDone_AndMustSendToGid(t *testing.T) {
	c := component.New(vid(0, 0), 6)
	c.CurrentNeighbors = map[int]struct{}{1: {}, 2: {}}
	c.ProcessedNeighbors = map[int]struct{}{}

	assert.False(t, c.IsDone())
	assert.True(t, c.MustSendToGid(1))
	assert.False(t, c.MustSendToGid(3))

	c.ProcessedNeighbors[1] = struct{}{}
	c.ProcessedNeighbors[2] = struct{}{}
	assert.True(t, c.IsDone())
	assert.False(t, c.MustSendToGid(1))
}

func TestPendingGids_Deterministic(t *testing.T) {
	c := component.New(vid(0, 0), 6)
	c.CurrentNeighbors = map[int]struct{}{5: {}, 1: {}, 3: {}}
	c.ProcessedNeighbors = map[int]struct{}{3: {}}

	assert.Equal(t, []int{1, 5}, c.PendingGids())
}

func TestDropLowEdges(t *testing.T) {
	c := component.New(vid(0, 0), 6)
	c.OutgoingEdges = []maskedbox.AmrEdge{
		{U: vid(0, 0), V: vid(1, 1)},
		{U: vid(0, 0), V: vid(2, 2)},
	}
	c.DropLowEdges(func(v amrvertex.Id) bool { return v.Gid != 2 })

	require.Len(t, c.OutgoingEdges, 1)
	assert.Equal(t, vid(1, 1), c.OutgoingEdges[0].V)
	_, ok := c.CurrentNeighbors[2]
	assert.False(t, ok)
}

func TestAdvanceGlobal_NeverRegresses(t *testing.T) {
	c := component.New(vid(0, 0), 5)
	c.AdvanceGlobal(false, 9, vid(3, 0)) // deeper, must advance
	assert.Equal(t, amrvertex.Value(9), c.GlobalValue)
	assert.Equal(t, vid(3, 0), c.GlobalDeepest)

	c.AdvanceGlobal(false, 4, vid(4, 0)) // shallower, must not regress
	assert.Equal(t, amrvertex.Value(9), c.GlobalValue)
	assert.Equal(t, vid(3, 0), c.GlobalDeepest)
}
