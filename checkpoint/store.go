package checkpoint

import (
	"context"
	"io"
)

// Store persists and retrieves opaque checkpoint blobs by key — the
// save/load side of block checkpointing, independent of the encoding
// (see package serialize) and of the backing medium.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Load(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
