package entity

import "errors"

var (
	// ErrNotFound is returned by repositories when no document matches the given id.
	ErrNotFound = errors.New("record not found")

	// ErrEmailAlreadyExists is returned when the unique email index rejects an insert.
	ErrEmailAlreadyExists = errors.New("a user with this email already exists")
)
