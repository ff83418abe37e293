package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("repository: duplicate")
	// ErrForeignKey is returned when a write references a row that does not exist.
	ErrForeignKey = errors.New("repository: foreign key violation")
)
