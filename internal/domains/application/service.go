package application

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for applications.
type Service interface {
	// Create validates the input and applies to an idea. Fails with the
	// idea domain's not-found error when the idea is gone, ErrOwnIdea for
	// self-application, ErrAlreadyApplied for a duplicate.
	Create(ctx context.Context, req CreateApplicationRequest) (*Application, error)

	// ListByUser returns the applications a user has submitted.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Application, error)

	// ListByIdeaAuthor returns the applications submitted against the
	// user's ideas.
	ListByIdeaAuthor(ctx context.Context, authorID uuid.UUID) ([]Application, error)

	// UpdateStatus decides on an application. Only the idea's author may
	// call it; accepted/rejected are terminal.
	UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) error
}
