package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Anything that does not wrap one of these is an internal error.
var (
	// ErrNotFound is returned when an entity is absent for the given id or key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyRegistered is returned when a uniqueness rule would be violated.
	ErrAlreadyRegistered = errors.New("already registered")
	// ErrInvalidField is returned for malformed or out-of-range input.
	ErrInvalidField = errors.New("invalid field")
	// ErrFieldMismatch is returned when the path id and the body id disagree.
	ErrFieldMismatch = errors.New("field mismatch")
)

// Error is a classified failure carrying a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the kind so errors.Is(err, ErrNotFound) works.
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds an ErrNotFound error.
func NotFoundf(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

// AlreadyRegisteredf builds an ErrAlreadyRegistered error.
func AlreadyRegisteredf(format string, args ...any) error {
	return newError(ErrAlreadyRegistered, format, args...)
}

// InvalidFieldf builds an ErrInvalidField error.
func InvalidFieldf(format string, args ...any) error {
	return newError(ErrInvalidField, format, args...)
}

// FieldMismatchf builds an ErrFieldMismatch error.
func FieldMismatchf(format string, args ...any) error {
	return newError(ErrFieldMismatch, format, args...)
}
