package idea

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the idea data access contract.
type Repository interface {
	// Create persists a new idea.
	Create(ctx context.Context, idea *Idea) error

	// FindByID looks an idea up by id.
	// Returns ErrIdeaNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Idea, error)

	// List returns all ideas, newest first.
	List(ctx context.Context) ([]Idea, error)

	// Update overwrites the mutable fields of an idea.
	// Returns ErrIdeaNotFound when absent.
	Update(ctx context.Context, idea *Idea) error

	// Delete removes the idea AND all applications referencing it, in one
	// transaction with the application cleanup ordered first.
	// Returns ErrIdeaNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
