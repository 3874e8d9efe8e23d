package config

import (
	"fmt"

	"github.com/katalvlaran/amrmerge/checkpoint"
)

// NewStore builds the checkpoint.Store backend named by c, wiring its
// credentials and endpoint fields through to the concrete
// implementation. Validate should be called on the owning AppConfig
// before this, so an unsupported Type or a missing COS bucket or
// region is already ruled out; COS credentials are not checked there.
func (c StorageConfig) NewStore() (checkpoint.Store, error) {
	switch c.Type {
	case "", "local":
		store, err := checkpoint.NewFileStore(c.LocalPath)
		if err != nil {
			return nil, fmt.Errorf("config: build local store: %w", err)
		}
		return store, nil
	case "cos":
		store, err := checkpoint.NewCOSStore(checkpoint.COSConfig{
			Bucket:    c.Bucket,
			Region:    c.Region,
			SecretID:  c.SecretID,
			SecretKey: c.SecretKey,
			Domain:    c.Domain,
			Scheme:    c.Scheme,
		})
		if err != nil {
			return nil, fmt.Errorf("config: build cos store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("config: unsupported storage type: %s", c.Type)
	}
}
