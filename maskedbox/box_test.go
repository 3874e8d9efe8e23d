package maskedbox_test

import (
	"testing"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/maskedbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourByFour(gen func(x, y int) amrvertex.Value) [][]amrvertex.Value {
	vals := make([][]amrvertex.Value, 4)
	for y := 0; y < 4; y++ {
		vals[y] = make([]amrvertex.Value, 4)
		for x := 0; x < 4; x++ {
			vals[y][x] = gen(x, y)
		}
	}
	return vals
}

func TestNew_Scenario1_AllActive(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 4, Y1: 4}
	vals := fourByFour(func(x, y int) amrvertex.Value { return amrvertex.Value(x + y) })

	b, err := maskedbox.New(0, 0, core, core, vals, maskedbox.Link{}, false, maskedbox.Absolute, 0)
	require.NoError(t, err)

	verts := b.Vertices()
	assert.Len(t, verts, 16)

	deepest := b.VertexAt(3, 3)
	v, ok := b.Value(deepest)
	require.True(t, ok)
	assert.Equal(t, amrvertex.Value(6), v)

	m, err := b.Get(3, 3)
	require.NoError(t, err)
	assert.Equal(t, maskedbox.Active, m)
}

func TestNew_LowMoat(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 3, Y1: 1}
	vals := [][]amrvertex.Value{{10, 0, 10}}

	b, err := maskedbox.New(1, 0, core, core, vals, maskedbox.Link{}, false, maskedbox.Absolute, 5)
	require.NoError(t, err)

	m0, _ := b.Get(0, 0)
	m1, _ := b.Get(1, 0)
	m2, _ := b.Get(2, 0)
	assert.Equal(t, maskedbox.Active, m0)
	assert.Equal(t, maskedbox.Low, m1)
	assert.Equal(t, maskedbox.Active, m2)

	// The moat breaks connectivity in the topology.
	assert.Empty(t, b.Link(b.VertexAt(0, 0)))
}

func TestGhostClassification_SameLevel(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}
	bounds := maskedbox.Rect{X0: 0, Y0: 0, X1: 3, Y1: 2}
	vals := [][]amrvertex.Value{{1, 2, 9}, {1, 2, 9}}
	link := maskedbox.Link{Neighbors: []maskedbox.LinkNeighbor{
		{Gid: 7, Level: maskedbox.SameLevel, Core: maskedbox.Rect{X0: 2, Y0: 0, X1: 4, Y1: 2}},
	}}

	b, err := maskedbox.New(0, 0, core, bounds, vals, link, false, maskedbox.Absolute, 5)
	require.NoError(t, err)

	m, err := b.Get(2, 0)
	require.NoError(t, err)
	assert.Equal(t, maskedbox.Ghost, m)
}

func TestGhostClassification_UnknownGidIsError(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}
	bounds := maskedbox.Rect{X0: 0, Y0: 0, X1: 3, Y1: 2}
	vals := [][]amrvertex.Value{{1, 2, 9}, {1, 2, 9}}

	_, err := maskedbox.New(0, 0, core, bounds, vals, maskedbox.Link{}, false, maskedbox.Absolute, 5)
	assert.ErrorIs(t, err, maskedbox.ErrUnknownNeighborGid)
}

func TestInitialEdges_CoveredNeverContribute(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 1}
	bounds := maskedbox.Rect{X0: 0, Y0: 0, X1: 3, Y1: 1}
	vals := [][]amrvertex.Value{{10, 10, 10}}
	link := maskedbox.Link{Neighbors: []maskedbox.LinkNeighbor{
		{Gid: 9, Level: maskedbox.Finer, Core: maskedbox.Rect{X0: 2, Y0: 0, X1: 4, Y1: 1}},
	}}

	b, err := maskedbox.New(0, 0, core, bounds, vals, link, false, maskedbox.Absolute, 5)
	require.NoError(t, err)

	edges := b.InitialEdges()
	assert.Empty(t, edges[9])
}

func TestInitialEdges_SameLevelBucketedByGid(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 1}
	bounds := maskedbox.Rect{X0: 0, Y0: 0, X1: 3, Y1: 1}
	vals := [][]amrvertex.Value{{10, 10, 10}}
	link := maskedbox.Link{Neighbors: []maskedbox.LinkNeighbor{
		{Gid: 9, Level: maskedbox.SameLevel, Core: maskedbox.Rect{X0: 2, Y0: 0, X1: 4, Y1: 1}},
	}}

	b, err := maskedbox.New(0, 0, core, bounds, vals, link, false, maskedbox.Absolute, 5)
	require.NoError(t, err)

	edges := b.InitialEdges()
	require.Len(t, edges[9], 1)
	assert.Equal(t, b.VertexAt(1, 0), edges[9][0].U)
	assert.Equal(t, 9, edges[9][0].V.Gid)
}

func TestFinalizeRelative(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 1}
	vals := [][]amrvertex.Value{{1, 9}}

	b, err := maskedbox.New(0, 0, core, core, vals, maskedbox.Link{}, false, maskedbox.Relative, 0)
	require.NoError(t, err)

	sum, n := b.Stats()
	assert.Equal(t, amrvertex.Value(10), sum)
	assert.Equal(t, 2, n)

	require.NoError(t, b.FinalizeRelative(5))
	m0, _ := b.Get(0, 0)
	m1, _ := b.Get(1, 0)
	assert.Equal(t, maskedbox.Low, m0)
	assert.Equal(t, maskedbox.Active, m1)
}

func TestIsCoreBoundary(t *testing.T) {
	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 4, Y1: 4}
	vals := fourByFour(func(x, y int) amrvertex.Value { return amrvertex.Value(x + y) })
	b, err := maskedbox.New(0, 0, core, core, vals, maskedbox.Link{}, false, maskedbox.Absolute, 0)
	require.NoError(t, err)

	assert.True(t, b.IsCoreBoundary(b.VertexAt(0, 0)))
	assert.False(t, b.IsCoreBoundary(b.VertexAt(1, 1)))
}
