package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (e.g. a second pending edge for the same ordered pair).
	ErrDuplicate = errors.New("entity already exists")
)
