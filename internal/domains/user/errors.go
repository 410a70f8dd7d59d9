package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level (business logic) errors
var (
	// Deliberately the same error for "no such user" and "wrong password"
	// so account existence never leaks.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
