package minio

import (
	"context"
	"testing"

	"github.com/hupe1980/bitregion/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-bitregion"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "test-prefix/")

	// Put and Open
	data := []byte{0b10100000, 0b00000001, 0xff}
	err = store.Put(ctx, "region.bits", data)
	require.NoError(t, err)

	blob, err := store.Open(ctx, "region.bits")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	got, err := blobstore.ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.NoError(t, blob.Close())

	// Ranged read
	blob, err = store.Open(ctx, "region.bits")
	require.NoError(t, err)
	buf := make([]byte, 1)
	n, err := blob.ReadAt(buf, 2)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0xff), buf[0])
	require.NoError(t, blob.Close())

	// List
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "region.bits")

	// Missing blob
	_, err = store.Open(ctx, "missing.bits")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// Delete
	require.NoError(t, store.Delete(ctx, "region.bits"))
	require.NoError(t, store.Delete(ctx, "region.bits"), "double delete is fine")
}
