package repository

import "errors"

var (
	// ErrNotFound is returned when a document or embedded entry is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned on unique-index violations (e.g. email taken).
	ErrDuplicate = errors.New("duplicate")
)
