// Package mocks provides mock implementations for testing.
package mocks

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mcdonaldj/filecheck/internal/ports"
)

// MockFileSystem implements ports.FileSystem for testing.
type MockFileSystem struct {
	// Files maps paths to file contents
	Files map[string][]byte
	// Dirs marks paths that exist as directories
	Dirs map[string]bool
	// Errors maps paths to errors returned by every operation on that path
	Errors map[string]error
	// OpenErrors maps paths to errors returned only by Open and OpenFile
	OpenErrors map[string]error
	// CloseErrors maps paths to errors returned when a handle is closed
	CloseErrors map[string]error

	// Call tracking
	Calls       int // total filesystem calls of any kind
	StatCalls   []string
	OpenCalls   []string
	OpenHandles int // handles opened and not yet closed
}

// NewMockFileSystem creates a new mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:       make(map[string][]byte),
		Dirs:        make(map[string]bool),
		Errors:      make(map[string]error),
		OpenErrors:  make(map[string]error),
		CloseErrors: make(map[string]error),
	}
}

// Stat returns file info for the named file.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	m.Calls++
	m.StatCalls = append(m.StatCalls, name)
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if m.Dirs[name] {
		return &mockFileInfo{name: filepath.Base(name), isDir: true, mode: os.ModeDir | 0755}, nil
	}
	if content, ok := m.Files[name]; ok {
		return &mockFileInfo{name: filepath.Base(name), size: int64(len(content)), mode: 0644}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// Open opens the named file for reading.
func (m *MockFileSystem) Open(name string) (fs.File, error) {
	m.Calls++
	m.OpenCalls = append(m.OpenCalls, name)
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if err, ok := m.OpenErrors[name]; ok {
		return nil, err
	}
	content, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	m.OpenHandles++
	return &mockFile{fs: m, name: name, content: content}, nil
}

// OpenFile opens the named file with the given flags.
// Only the create and exclusive flags are honoured.
func (m *MockFileSystem) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	m.Calls++
	m.OpenCalls = append(m.OpenCalls, name)
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if err, ok := m.OpenErrors[name]; ok {
		return nil, err
	}
	_, exists := m.Files[name]
	if m.Dirs[name] {
		exists = true
	}
	if exists && flag&os.O_CREATE != 0 && flag&os.O_EXCL != 0 {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
	}
	if !exists {
		if flag&os.O_CREATE == 0 {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		if dir := filepath.Dir(name); dir != "." && dir != "/" && !m.Dirs[dir] {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		m.Files[name] = []byte{}
	}
	m.OpenHandles++
	return &mockFile{fs: m, name: name, content: m.Files[name]}, nil
}

// MkdirAll creates a directory along with any necessary parents.
func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.Calls++
	if err, ok := m.Errors[path]; ok {
		return err
	}
	for dir := path; dir != "." && dir != "/"; dir = filepath.Dir(dir) {
		m.Dirs[dir] = true
	}
	return nil
}

// mockFileInfo implements os.FileInfo for testing.
type mockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

// mockFile implements fs.File and io.WriteCloser for testing.
// Closing releases the handle on the owning MockFileSystem once.
type mockFile struct {
	fs      *MockFileSystem
	name    string
	content []byte
	offset  int
	closed  bool
}

func (f *mockFile) Stat() (fs.FileInfo, error) {
	return &mockFileInfo{name: filepath.Base(f.name), size: int64(len(f.content))}, nil
}

func (f *mockFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	if f.offset >= len(f.content) {
		return 0, io.EOF
	}
	n := copy(p, f.content[f.offset:])
	f.offset += n
	return n, nil
}

func (f *mockFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	f.content = append(f.content, p...)
	f.fs.Files[f.name] = f.content
	return len(p), nil
}

func (f *mockFile) Close() error {
	if f.closed {
		return fs.ErrClosed
	}
	f.closed = true
	f.fs.OpenHandles--
	if err, ok := f.fs.CloseErrors[f.name]; ok {
		return err
	}
	return nil
}

// Compile-time check that MockFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*MockFileSystem)(nil)
