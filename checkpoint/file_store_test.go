package checkpoint_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/katalvlaran/amrmerge/checkpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := checkpoint.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	content := []byte("checkpoint payload")

	require.NoError(t, store.Save(ctx, "block/0.bin", bytes.NewReader(content)))

	exists, err := store.Exists(ctx, "block/0.bin")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := store.Load(ctx, "block/0.bin")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFileStore_LoadMissingReturnsErrNotFound(t *testing.T) {
	store, err := checkpoint.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "nope.bin")
	assert.ErrorIs(t, err, checkpoint.ErrNotFound)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	store, err := checkpoint.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "x.bin", bytes.NewReader([]byte("a"))))
	require.NoError(t, store.Delete(ctx, "x.bin"))
	require.NoError(t, store.Delete(ctx, "x.bin")) // second delete: no error

	exists, err := store.Exists(ctx, "x.bin")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileStore_EmptyBaseDirDefaults(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origDir)
	require.NoError(t, os.Chdir(t.TempDir()))

	store, err := checkpoint.NewFileStore("")
	require.NoError(t, err)
	require.NotNil(t, store)
}
