// Package mmap provides memory-mapped byte buffers, optionally backed by a file.
//
// # Overview
//
// A Mapping is a contiguous, mutable byte region obtained from the operating
// system. File-backed mappings share pages with the page cache, so writes are
// visible through the mapping immediately and can be forced to durable
// storage with Flush. Anonymous mappings are plain zero-initialized memory
// with no durable backing; Flush is a no-op for them.
//
// # Usage
//
//	m, err := mmap.Map(f.Fd(), size)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//	buf[0] = 0xff
//	_ = m.Flush()
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): mmap(2) with msync(2) for Flush
//   - Windows: CreateFileMapping/MapViewOfFile with FlushViewOfFile
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Concurrent reads
// and writes through Bytes() are not synchronized; callers must ensure no
// goroutine touches the slice after Close returns.
package mmap
