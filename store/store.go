// Package store holds the MongoDB repositories. Every query is scoped by the
// owning user's id, so records belonging to other users surface as not found.
package store

import "errors"

var (
	// ErrNotFound means no record matched the id within the caller's scope.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a uniqueness rule (email, category name) was violated.
	ErrDuplicate = errors.New("record already exists")
)
