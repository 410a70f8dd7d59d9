package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for the credential store and
// authentication.
type Service interface {
	// Register creates an account. Fails with ErrEmailAlreadyExists when the
	// lower-cased email is taken.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login verifies credentials. Fails with ErrInvalidCredentials for both
	// unknown email and wrong password.
	Login(ctx context.Context, req LoginRequest) (*UserDTO, error)

	// GetProfile returns the public representation of an account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
}
