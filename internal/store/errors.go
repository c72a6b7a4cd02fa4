package store

import "errors"

var (
	// ErrUserNotFound indicates that no account exists for the requested
	// username.
	ErrUserNotFound = errors.New("user not found")
)
