package repository

import "errors"

// Generic repository errors.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry indicates an insert or update violated a unique
	// constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Resource-specific aliases.
var (
	ErrUserNotFound        = ErrNotFound
	ErrReservationNotFound = ErrNotFound
)
