package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the credential-store data access contract.
type Repository interface {
	// Create persists a new user.
	// Returns ErrEmailAlreadyExists on a duplicate email (the table carries a
	// unique index, so the check-then-act race is closed at the store level).
	Create(ctx context.Context, user *User) error

	// FindByID looks a user up by id.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail looks a user up by (lower-cased) email, used for login.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether an account already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
