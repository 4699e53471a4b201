// Package checker verifies that a file exists and can be opened for reading,
// and creates files that are absent. Every failure is returned as an *AccessError.
package checker

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"

	"github.com/mcdonaldj/filecheck/internal/ports"
)

// Attempt records what happened during one CheckAndOpen call.
// Opened is only ever true when Existed is true and Kind is KindNone.
type Attempt struct {
	Path    string
	Existed bool
	Opened  bool
	Kind    ErrorKind
}

// Checker runs existence-gated open checks against a filesystem.
type Checker struct {
	fs   ports.FileSystem
	sink ports.DiagnosticSink

	// CreateParents makes CreateIfAbsent create missing parent directories.
	CreateParents bool
}

// New creates a Checker. A nil sink discards diagnostics.
func New(fsys ports.FileSystem, sink ports.DiagnosticSink) *Checker {
	if sink == nil {
		sink = discardSink{}
	}
	return &Checker{fs: fsys, sink: sink}
}

// CheckAndOpen checks that path exists and opens it for reading, then releases the handle.
// No data is read. One diagnostic line is emitted before returning, on every path.
func (c *Checker) CheckAndOpen(path string) (attempt Attempt, err error) {
	attempt.Path = path
	defer func() {
		attempt.Kind = KindOf(err)
		if attempt.Kind != KindNone {
			attempt.Opened = false
		}
		c.sink.Emit(describe(attempt, err))
	}()

	if err := validatePath(path); err != nil {
		return attempt, err
	}

	info, err := c.fs.Stat(path)
	if err != nil {
		// A path running through a regular file does not resolve either
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return attempt, &AccessError{Kind: NotFound, Path: path, Err: err}
		}
		return attempt, &AccessError{Kind: IoFailure, Path: path, Err: err}
	}
	attempt.Existed = true

	if info.IsDir() {
		return attempt, &AccessError{Kind: IoFailure, Path: path, Err: errIsDirectory}
	}

	f, err := c.fs.Open(path)
	if err != nil {
		// Covers a file removed between stat and open as well as permission faults
		return attempt, &AccessError{Kind: IoFailure, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &AccessError{Kind: IoFailure, Path: path, Err: fmt.Errorf("closing: %w", cerr)}
		}
	}()
	attempt.Opened = true

	return attempt, nil
}

// validatePath rejects absent and malformed path arguments before any filesystem call.
func validatePath(path string) error {
	if path == "" {
		return &AccessError{Kind: InvalidInput, Err: errors.New("path is empty")}
	}
	if strings.ContainsRune(path, 0) {
		return &AccessError{Kind: InvalidInput, Path: path, Err: errors.New("path contains NUL byte")}
	}
	return nil
}

// describe renders the diagnostic line for an attempt.
func describe(a Attempt, err error) string {
	line := fmt.Sprintf("check path=%q existed=%t opened=%t kind=%s", a.Path, a.Existed, a.Opened, a.Kind)
	if err != nil {
		line += fmt.Sprintf(" error=%q", err.Error())
	}
	return line
}

type discardSink struct{}

func (discardSink) Emit(string) {}
