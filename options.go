package bitregion

import (
	"log/slog"

	"github.com/hupe1980/bitregion/internal/fs"
)

type options struct {
	filename string
	fileMode bool
	fs       fs.FileSystem
	logger   *slog.Logger
}

// Option configures Region construction.
type Option func(*options)

// WithFile makes the region file-backed at path. The file is created if it
// does not exist and zero-extended to the region length before mapping, so
// reopening the same path with the same length reproduces the contents.
//
// An empty path fails construction with ErrMissingFilename.
func WithFile(path string) Option {
	return func(o *options) {
		o.fileMode = true
		o.filename = path
	}
}

// WithFileSystem overrides the file system used for file-backed regions.
// Intended for tests; defaults to the local file system.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fs = fsys
	}
}

// WithLogger enables structured debug logging of construction side effects
// (file creation and zero-extension). By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
