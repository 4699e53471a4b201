package checker

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a check or create failed.
type ErrorKind int

const (
	// KindNone means the operation succeeded.
	KindNone ErrorKind = iota
	// InvalidInput means the path argument was absent or malformed.
	InvalidInput
	// NotFound means the path does not resolve to an existing file.
	NotFound
	// IoFailure covers every other filesystem fault.
	IoFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case InvalidInput:
		return "invalid_input"
	case NotFound:
		return "not_found"
	case IoFailure:
		return "io_failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. An *AccessError matches the sentinel of its Kind.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("file does not exist")
	ErrIOFailure    = errors.New("i/o failure")
)

// errIsDirectory is the cause recorded when a path exists but is a directory.
var errIsDirectory = errors.New("is a directory")

// AccessError is the typed failure returned by CheckAndOpen and CreateIfAbsent.
type AccessError struct {
	Kind ErrorKind
	Path string
	Err  error // underlying cause, nil for InvalidInput on an absent path
}

func (e *AccessError) Error() string {
	var msg string
	switch e.Kind {
	case InvalidInput:
		msg = "invalid path"
	case NotFound:
		msg = "file does not exist"
	case IoFailure:
		msg = "i/o failure"
	default:
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AccessError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind.
func (e *AccessError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == InvalidInput
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrIOFailure:
		return e.Kind == IoFailure
	}
	return false
}

// KindOf returns the ErrorKind carried by err, KindNone for nil,
// and IoFailure for any error that is not an *AccessError.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var ae *AccessError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return IoFailure
}
