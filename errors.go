package dagcbor

import "errors"

// ErrorKind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on ErrorKind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type ErrorKind string

const (
	// Encode-side kinds.
	KindInvalidValue    ErrorKind = "InvalidValue"
	KindInvalidMapKey   ErrorKind = "InvalidMapKey"
	KindUnsortedMapKeys ErrorKind = "UnsortedMapKeys" // reserved; the encoder sorts

	// Decode-side kinds.
	KindInvalidTag           ErrorKind = "InvalidTag"
	KindInvalidCIDFormat     ErrorKind = "InvalidCIDFormat"
	KindUnsupportedPrimitive ErrorKind = "UnsupportedPrimitive"
	KindFloatConversion      ErrorKind = "FloatConversion"
	KindIntegerOutOfRange    ErrorKind = "IntegerOutOfRange"
	KindNotCanonical         ErrorKind = "NotCanonical"

	// Wrappers around framer errors.
	KindEncoding ErrorKind = "Encoding"
	KindDecoding ErrorKind = "Decoding"
)

// Error is the library's structured error type.
//
// Tag carries the offending CBOR tag number for KindInvalidTag and is zero
// otherwise. Message is intended for humans; do not match on it.
type Error struct {
	Kind    ErrorKind
	Tag     uint64
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind ErrorKind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func newTagError(tag uint64, msg string) error {
	return &Error{Kind: KindInvalidTag, Tag: tag, Message: msg}
}

func wrapError(kind ErrorKind, msg string, cause error) error {
	if cause == nil {
		return newError(kind, msg)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// TagNumber returns the rejected CBOR tag number for a KindInvalidTag error.
// The second result is false for any other error.
func TagNumber(err error) (uint64, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	if e.Kind != KindInvalidTag {
		return 0, false
	}
	return e.Tag, true
}
