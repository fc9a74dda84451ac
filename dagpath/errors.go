package dagpath

import (
	"errors"
	"fmt"

	"xdao.co/dagcbor"
)

// ErrorKind is a stable category for programmatic error handling. Callers
// should branch on the kind rather than matching error strings.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NotFound"
	KindTypeMismatch ErrorKind = "TypeMismatch"
)

// Error is the structured error returned by the typed getters. Path is the
// path text the getter was asked to resolve.
type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func notFound(path string) error {
	return &Error{Kind: KindNotFound, Path: path, Message: fmt.Sprintf("path %q not found", path)}
}

func mismatch(path, want string, got dagcbor.Kind) error {
	return &Error{
		Kind:    KindTypeMismatch,
		Path:    path,
		Message: fmt.Sprintf("path %q: want %s, got %s", path, want, got),
	}
}

func nullMismatch(path, want string) error {
	return &Error{
		Kind:    KindTypeMismatch,
		Path:    path,
		Message: fmt.Sprintf("path %q: want %s, got null", path, want),
	}
}

// IsNotFound reports whether err is (or wraps) a NotFound path error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsTypeMismatch reports whether err is (or wraps) a TypeMismatch path error.
func IsTypeMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTypeMismatch
}
