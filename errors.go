package bitregion

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFilename is returned when a file-backed region is requested
	// without a path.
	ErrMissingFilename = errors.New("bitregion: must provide a filename for a file-backed region")
	// ErrNegativeLength is returned when a region is constructed with a
	// negative byte length.
	ErrNegativeLength = errors.New("bitregion: length must be non-negative")
	// ErrClosed is returned when operating on a closed region.
	ErrClosed = errors.New("bitregion: region is closed")
)

// ErrIndexOutOfRange indicates a bit index outside [0, Bits).
type ErrIndexOutOfRange struct {
	Index int
	Bits  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bitregion: index %d out of range [0, %d)", e.Index, e.Bits)
}

// ErrSizeMismatch indicates set algebra attempted on regions of differing
// byte lengths.
type ErrSizeMismatch struct {
	Size      int
	OtherSize int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("bitregion: size mismatch: %d != %d bytes", e.Size, e.OtherSize)
}
