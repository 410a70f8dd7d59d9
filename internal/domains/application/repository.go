package application

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the application data access contract.
type Repository interface {
	// Create persists a new application.
	// Returns ErrAlreadyApplied on the (idea_id, user_id) unique index.
	Create(ctx context.Context, app *Application) error

	// FindByID looks an application up by id.
	// Returns ErrApplicationNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Application, error)

	// ExistsByIdeaAndUser reports whether the user already applied to the
	// idea.
	ExistsByIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (bool, error)

	// ListByUser returns the user's applications, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Application, error)

	// ListByIdeaAuthor returns applications against any idea authored by
	// the given user, newest first.
	ListByIdeaAuthor(ctx context.Context, authorID uuid.UUID) ([]Application, error)

	// UpdateStatus sets the status and bumps updated_at.
	// Returns ErrApplicationNotFound when absent.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}
