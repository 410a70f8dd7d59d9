package idea

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for ideas.
type Service interface {
	// Create validates the input and posts a new idea.
	Create(ctx context.Context, req CreateIdeaRequest) (*Idea, error)

	// List returns all ideas, newest first.
	List(ctx context.Context) ([]Idea, error)

	// GetByID returns a single idea.
	GetByID(ctx context.Context, id uuid.UUID) (*Idea, error)

	// Update rewrites the mutable fields. Fails with ErrIdeaNotFound /
	// ErrNotIdeaOwner; the author snapshot is never altered.
	Update(ctx context.Context, id uuid.UUID, req UpdateIdeaRequest) (*Idea, error)

	// Delete removes the idea and cascades to its applications. Fails with
	// ErrIdeaNotFound / ErrNotIdeaOwner.
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}
