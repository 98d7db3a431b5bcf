package domain

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenNotFound is returned when no token matches the key.
	ErrTokenNotFound = errors.New("token not found")
)
