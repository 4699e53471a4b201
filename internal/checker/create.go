package checker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Creation is the outcome of a successful CreateIfAbsent.
type Creation int

const (
	Created Creation = iota + 1
	AlreadyExists
)

func (c Creation) String() string {
	switch c {
	case Created:
		return "created"
	case AlreadyExists:
		return "already exists"
	default:
		return fmt.Sprintf("Creation(%d)", int(c))
	}
}

// CreateIfAbsent creates an empty file at path unless something already exists there.
func (c *Checker) CreateIfAbsent(path string) (Creation, error) {
	if err := validatePath(path); err != nil {
		return 0, err
	}

	if c.CreateParents {
		if dir := filepath.Dir(path); dir != "." {
			if err := c.fs.MkdirAll(dir, 0755); err != nil {
				return 0, &AccessError{Kind: IoFailure, Path: path, Err: fmt.Errorf("creating parent dir: %w", err)}
			}
		}
	}

	f, err := c.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return AlreadyExists, nil
		}
		return 0, &AccessError{Kind: IoFailure, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &AccessError{Kind: IoFailure, Path: path, Err: fmt.Errorf("closing: %w", err)}
	}
	return Created, nil
}
