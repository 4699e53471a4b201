// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem abstracts the host filesystem calls the checker and creator need.
// Production code uses OSFileSystem adapter; tests use MockFileSystem.
type FileSystem interface {
	// Stat returns file info for the named file.
	// A missing file reports an error matching fs.ErrNotExist.
	Stat(name string) (os.FileInfo, error)

	// Open opens the named file for reading.
	// The caller owns the returned handle and must close it.
	Open(name string) (fs.File, error)

	// OpenFile opens the named file with the given flags and permissions.
	// Used with os.O_CREATE|os.O_EXCL for create-if-absent.
	OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error)

	// MkdirAll creates a directory along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error
}
