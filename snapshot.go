package bitregion

import (
	"context"
	"fmt"

	"github.com/hupe1980/bitregion/blobstore"
)

// Save uploads the region's raw bit buffer to the store under name. The
// layout is the flat file format of file-backed regions: byte b holds bits
// 8b..8b+7, no header or metadata.
func Save(ctx context.Context, store blobstore.BlobStore, name string, r *Region) error {
	if r.closed.Load() {
		return ErrClosed
	}
	if err := store.Put(ctx, name, r.buf); err != nil {
		return fmt.Errorf("bitregion: save snapshot %s: %w", name, err)
	}
	return nil
}

// Load creates a Region from a snapshot previously written with Save (or
// from any flat blob). The region's byte length is the blob size. By default
// the region is anonymous; pass WithFile to place it on durable storage.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*Region, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("bitregion: open snapshot %s: %w", name, err)
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(blob)
	if err != nil {
		return nil, fmt.Errorf("bitregion: read snapshot %s: %w", name, err)
	}

	r, err := New(len(data), opts...)
	if err != nil {
		return nil, err
	}
	copy(r.buf, data)
	return r, nil
}
