package mmap

import (
	"os"
	"sync/atomic"
)

// Mapping represents a mapped byte region.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
	// unmap and flush are the platform-specific release and writeback
	// functions. Either may be nil (zero-length or anonymous mappings).
	unmap func([]byte) error
	flush func([]byte) error
}

// Map maps size bytes of the file behind fd into memory, read-write and
// shared: stores through Bytes() land in the page cache and reach the file.
// The file must be at least size bytes long.
func Map(fd uintptr, size int) (*Mapping, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{}, nil
	}

	data, unmapFunc, flushFunc, err := osMap(fd, size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  size,
		unmap: unmapFunc,
		flush: flushFunc,
	}, nil
}

// MapAnon creates a read-write anonymous mapping of size bytes.
// The memory is zero-initialized by the platform and has no durable backing.
func MapAnon(size int) (*Mapping, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{}, nil
	}

	data, unmapFunc, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  size,
		unmap: unmapFunc,
	}, nil
}

// Open maps the file at path into memory as read-only.
// The file descriptor is not kept open; the mapping outlives it.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{}, nil
	}

	data, unmapFunc, err := osMapRO(f.Fd(), int(size))
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  int(size),
		unmap: unmapFunc,
	}, nil
}

// Flush forces modified pages back to the underlying file. It blocks until
// the writeback completes. For anonymous and read-only mappings this is a
// no-op. Safe to call repeatedly.
func (m *Mapping) Flush() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.flush == nil || m.data == nil {
		return nil
	}
	return m.flush(m.data)
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}
