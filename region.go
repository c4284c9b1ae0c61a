package bitregion

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/hupe1980/bitregion/internal/fs"
	"github.com/hupe1980/bitregion/internal/mmap"
)

// extendChunk bounds the write size used when zero-extending a backing file,
// capping the peak memory and IO burst of construction.
const extendChunk = 100000

// Region is a fixed-size, bit-addressable byte buffer. Bit i lives in byte
// i/8 at offset 7-i%8 from the least-significant bit, so byte b holds bits
// 8b..8b+7 with bit 8b as the most significant.
//
// A Region is either anonymous (process memory only) or file-backed
// (memory-mapped from a file of exactly Size bytes). Methods are not safe
// for concurrent use.
type Region struct {
	size   int
	path   string
	buf    []byte
	m      *mmap.Mapping
	f      fs.File // nil for anonymous regions
	closed atomic.Bool
}

// New creates a Region of length bytes (8*length bits), all zero unless a
// backing file already holds data. Without options the region is anonymous;
// WithFile selects file-backed mode.
//
// File-backed construction opens the file create-if-absent and, when it is
// shorter than length, appends zero bytes in bounded chunks (syncing after
// each) until the sizes match. The file is never truncated.
func New(length int, opts ...Option) (*Region, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}

	o := options{
		fs: fs.Default,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.fileMode {
		m, err := mmap.MapAnon(length)
		if err != nil {
			return nil, fmt.Errorf("bitregion: map %d anonymous bytes: %w", length, err)
		}
		return &Region{size: length, buf: m.Bytes(), m: m}, nil
	}

	if o.filename == "" {
		return nil, ErrMissingFilename
	}

	f, err := o.fs.OpenFile(o.filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("bitregion: open %s: %w", o.filename, err)
	}

	if err := extendToLength(f, o.filename, length, o.logger); err != nil {
		f.Close()
		return nil, err
	}

	m, err := mmap.Map(f.Fd(), length)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bitregion: map %s: %w", o.filename, err)
	}

	return &Region{
		size: length,
		path: o.filename,
		buf:  m.Bytes(),
		m:    m,
		f:    f,
	}, nil
}

// extendToLength appends zero bytes until the file is at least length bytes
// long, syncing after every chunk.
func extendToLength(f fs.File, path string, length int, logger *slog.Logger) error {
	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("bitregion: stat %s: %w", path, err)
	}
	if fi.Size() >= int64(length) {
		return nil
	}

	if logger != nil {
		logger.Debug("zero-extending backing file",
			slog.String("path", path),
			slog.Int64("size", fi.Size()),
			slog.Int("length", length))
	}

	zeros := make([]byte, min(length, extendChunk))
	for fi.Size() < int64(length) {
		n := int64(length) - fi.Size()
		if n > int64(len(zeros)) {
			n = int64(len(zeros))
		}
		if _, err := f.Write(zeros[:n]); err != nil {
			return fmt.Errorf("bitregion: extend %s: %w", path, err)
		}
		if err := f.Sync(); err != nil {
			return fmt.Errorf("bitregion: sync %s: %w", path, err)
		}
		if fi, err = f.Stat(); err != nil {
			return fmt.Errorf("bitregion: stat %s: %w", path, err)
		}
	}
	return nil
}

// Len returns the number of addressable bits, 8*Size.
// It remains valid after Close.
func (r *Region) Len() int {
	return 8 * r.size
}

// Size returns the byte length of the backing buffer.
// It remains valid after Close.
func (r *Region) Size() int {
	return r.size
}

// Get reports whether bit i is set.
func (r *Region) Get(i int) (bool, error) {
	if r.closed.Load() {
		return false, ErrClosed
	}
	if err := r.checkIndex(i); err != nil {
		return false, err
	}
	return r.buf[i/8]>>(7-i%8)&1 == 1, nil
}

// Set sets bit i to v, leaving the other bits of the same byte unchanged.
// For file-backed regions the write is visible to the mapping immediately
// but is not durable until Flush.
func (r *Region) Set(i int, v bool) error {
	if r.closed.Load() {
		return ErrClosed
	}
	if err := r.checkIndex(i); err != nil {
		return err
	}
	if v {
		r.buf[i/8] |= 1 << (7 - i%8)
	} else {
		r.buf[i/8] &^= 1 << (7 - i%8)
	}
	return nil
}

// SetBits sets every listed bit to 1. It fails on the first out-of-range
// index; bits before it have already been set.
func (r *Region) SetBits(indexes ...int) error {
	for _, i := range indexes {
		if err := r.Set(i, true); err != nil {
			return err
		}
	}
	return nil
}

// AllSet reports whether every listed bit is 1. With no indexes it reports
// false.
func (r *Region) AllSet(indexes ...int) (bool, error) {
	if len(indexes) == 0 {
		return false, nil
	}
	for _, i := range indexes {
		v, err := r.Get(i)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

func (r *Region) checkIndex(i int) error {
	if i < 0 || i/8 >= r.size {
		return &ErrIndexOutOfRange{Index: i, Bits: 8 * r.size}
	}
	return nil
}

// Bytes returns the raw backing slice, byte b holding bits 8b..8b+7.
// The slice aliases the mapping: it is valid only until Close, and mutating
// it mutates the region. Returns nil after Close.
func (r *Region) Bytes() []byte {
	if r.closed.Load() {
		return nil
	}
	return r.buf
}

// Flush forces the mapped buffer back to the underlying file, then syncs the
// file handle. Anonymous regions have nothing durable to flush and return
// nil. Idempotent.
func (r *Region) Flush() error {
	if r.closed.Load() {
		return ErrClosed
	}
	if r.f == nil {
		return nil
	}
	if err := r.m.Flush(); err != nil {
		return fmt.Errorf("bitregion: flush mapping %s: %w", r.path, err)
	}
	if err := r.f.Sync(); err != nil {
		return fmt.Errorf("bitregion: sync %s: %w", r.path, err)
	}
	return nil
}

// Close flushes pending writes, releases the mapping, and closes the file
// handle, in that order. Subsequent Get/Set/Flush calls fail with ErrClosed.
// A second Close returns nil.
func (r *Region) Close() error {
	if r.closed.Swap(true) {
		return nil
	}

	var err error
	if r.f != nil {
		if ferr := r.m.Flush(); ferr != nil {
			err = fmt.Errorf("bitregion: flush mapping %s: %w", r.path, ferr)
		} else if serr := r.f.Sync(); serr != nil {
			err = fmt.Errorf("bitregion: sync %s: %w", r.path, serr)
		}
	}

	r.buf = nil
	if uerr := r.m.Close(); uerr != nil && err == nil {
		err = fmt.Errorf("bitregion: unmap: %w", uerr)
	}
	if r.f != nil {
		if cerr := r.f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("bitregion: close %s: %w", r.path, cerr)
		}
	}
	return err
}

// Union returns a new anonymous Region whose bytes are the bitwise OR of the
// two operands' current contents. Both regions must be open and of equal
// size.
func (r *Region) Union(other *Region) (*Region, error) {
	out, err := r.newCombined(other)
	if err != nil {
		return nil, err
	}
	for i := range out.buf {
		out.buf[i] = r.buf[i] | other.buf[i]
	}
	return out, nil
}

// Intersect returns a new anonymous Region whose bytes are the bitwise AND
// of the two operands' current contents. Both regions must be open and of
// equal size.
func (r *Region) Intersect(other *Region) (*Region, error) {
	out, err := r.newCombined(other)
	if err != nil {
		return nil, err
	}
	for i := range out.buf {
		out.buf[i] = r.buf[i] & other.buf[i]
	}
	return out, nil
}

func (r *Region) newCombined(other *Region) (*Region, error) {
	if r.closed.Load() || other.closed.Load() {
		return nil, ErrClosed
	}
	if r.size != other.size {
		return nil, &ErrSizeMismatch{Size: r.size, OtherSize: other.size}
	}
	return New(r.size)
}
