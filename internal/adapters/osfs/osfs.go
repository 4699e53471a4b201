// Package osfs provides a filesystem adapter using the standard library os package.
package osfs

import (
	"io"
	"io/fs"
	"os"

	"github.com/mcdonaldj/filecheck/internal/ports"
)

// OSFileSystem implements ports.FileSystem using the standard library.
type OSFileSystem struct{}

// New creates a new OSFileSystem adapter.
func New() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for the named file.
func (f *OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	file, err := os.Open(name)
	if err != nil {
		// Avoid returning a typed nil inside the interface
		return nil, err
	}
	return file, nil
}

// OpenFile opens the named file with the given flags and permissions.
func (f *OSFileSystem) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	file, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// MkdirAll creates a directory along with any necessary parents.
func (f *OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Compile-time check that OSFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*OSFileSystem)(nil)
