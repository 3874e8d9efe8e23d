package serialize_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/block"
	"github.com/katalvlaran/amrmerge/maskedbox"
	"github.com/katalvlaran/amrmerge/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(gid, off int) amrvertex.Id { return amrvertex.Id{Gid: gid, Offset: off} }

// soloBoxBlock builds a single 2x2 box with no neighbours, runs Init
// and one Round (a no-op round, since there are no incoming messages),
// and returns the resulting Block for round-trip testing.
func soloBoxBlock(t *testing.T) *block.Block {
	t.Helper()

	core := maskedbox.Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}
	values := [][]amrvertex.Value{
		{1, 2},
		{2, 3},
	}
	box, err := maskedbox.New(0, 0, core, core, values, maskedbox.Link{}, false, maskedbox.Absolute, 1)
	require.NoError(t, err)

	b := block.New(0, false, false)
	b.Init(box)
	b.Round(nil)
	return b
}

func TestWriteReadBlock_RoundTrip(t *testing.T) {
	original := soloBoxBlock(t)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteBlock(&buf, original))

	restored, err := serialize.ReadBlock(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Gid, restored.Gid)
	assert.Equal(t, original.Negate(), restored.Negate())
	assert.Equal(t, original.Preserve(), restored.Preserve())
	assert.Equal(t, original.RoundNumber, restored.RoundNumber)

	assert.Equal(t, original.Box.RawMask(), restored.Box.RawMask())
	assert.Equal(t, original.Box.RawValues(), restored.Box.RawValues())
	assert.Equal(t, original.Box.RawGhostRemote(), restored.Box.RawGhostRemote())
	assert.Equal(t, original.Box.Threshold(), restored.Box.Threshold())
	assert.Equal(t, original.Box.Mode(), restored.Box.Mode())

	assert.Equal(t, original.DeepestVertices(), restored.DeepestVertices())
	require.Equal(t, len(original.Components), len(restored.Components))
	for i := range original.Components {
		oc, rc := original.Components[i], restored.Components[i]
		assert.Equal(t, oc.OriginalDeepest, rc.OriginalDeepest)
		assert.Equal(t, oc.GlobalDeepest, rc.GlobalDeepest)
		assert.Equal(t, oc.GlobalValue, rc.GlobalValue)
		assert.Equal(t, oc.CurrentNeighbors, rc.CurrentNeighbors)
		assert.Equal(t, oc.ProcessedNeighbors, rc.ProcessedNeighbors)
		assert.Equal(t, oc.OutgoingEdges, rc.OutgoingEdges)
	}

	// restored is still a usable Block: rerunning a round with no new
	// messages stays locally done.
	restored.Round(nil)
	assert.True(t, restored.LocalDone())
}

func TestReadBlock_BadMagicRejected(t *testing.T) {
	_, err := serialize.ReadBlock(bytes.NewReader([]byte("not a checkpoint at all")))
	assert.ErrorIs(t, err, serialize.ErrBadMagic)
}

func TestReadBlock_VersionMismatch(t *testing.T) {
	original := soloBoxBlock(t)
	var buf bytes.Buffer
	require.NoError(t, serialize.WriteBlock(&buf, original))

	raw := buf.Bytes()
	// Byte offset 4 is the little-endian version field; corrupt it to
	// a version this build does not understand.
	raw[4] = 0xFF

	_, err := serialize.ReadBlock(bytes.NewReader(raw))
	require.Error(t, err)
	var mismatch *serialize.ErrVersionMismatch
	assert.ErrorAs(t, err, &mismatch)
}
