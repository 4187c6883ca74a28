package store

import "errors"

// Sentinel errors shared by all stores. Handlers map these to the
// response taxonomy; anything else collapses to a 500.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicateTitle = errors.New("post title already exists")
)
