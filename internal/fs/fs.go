// Package fs abstracts the file system operations used for file-backed
// regions, so tests can inject failures on the write and sync paths.
package fs

import (
	"io"
	"os"
)

// File represents an open file. Fd exposes the descriptor so the file can be
// memory-mapped through this seam.
type File interface {
	io.ReadWriteCloser
	Sync() error
	Stat() (os.FileInfo, error)
	Fd() uintptr
}

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Stat(name string) (os.FileInfo, error)
	Remove(name string) error
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

func (LocalFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (LocalFS) Remove(name string) error              { return os.Remove(name) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}
