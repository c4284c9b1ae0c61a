// Package bitregion provides a bit-addressable view over a contiguous byte
// region, optionally backed by a memory-mapped file.
//
// A Region owns a fixed-size byte buffer and exposes individual bits by
// global index: bit i lives in byte i/8, most-significant-bit first. It is a
// low-level primitive intended to underlie probabilistic set-membership
// structures such as Bloom filters, which need dense, cache-friendly bit
// storage with O(1) get/set and bulk set algebra.
//
// # Backing modes
//
// Anonymous regions (the default) live only in process memory:
//
//	r, err := bitregion.New(1 << 20) // 8M bits
//	if err != nil { ... }
//	defer r.Close()
//
//	_ = r.Set(42, true)
//	on, _ := r.Get(42)
//
// File-backed regions persist across restarts. The file is created if
// absent, zero-extended (never truncated) to the requested length, and
// memory-mapped, so the on-disk layout is exactly the raw bit buffer:
//
//	r, err := bitregion.New(1<<20, bitregion.WithFile("filter.bits"))
//	...
//	_ = r.Flush() // force writes to durable storage
//
// # Set algebra
//
// Union and Intersect combine two equal-sized regions into a new anonymous
// region, byte-wise:
//
//	u, err := a.Union(b)
//
// # Lifecycle
//
// Close flushes pending writes, releases the mapping, and closes the file
// handle, in that order. It is idempotent. Callers own the lifecycle: there
// is no finalizer, and every exit path should close regions it owns. After
// Close, all get/set/flush calls fail with ErrClosed.
//
// Regions perform no internal locking; concurrent access from multiple
// goroutines requires caller-side synchronization.
package bitregion
