// Package blobstore provides storage abstraction for region snapshots.
//
// BlobStore is the interface for reading and writing flat data blobs. A
// region snapshot is the raw bit buffer, no header or metadata, so any
// implementation that round-trips bytes is sufficient.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap-backed reads
//   - MemoryStore: in-memory, for tests
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3 with range reads and managed uploads
//
// Implementations must be safe for concurrent use.
package blobstore
