package application

import "errors"

// Repository-level errors
var (
	ErrApplicationNotFound = errors.New("application not found")

	// ErrAlreadyApplied: at most one application per (idea, user) pair,
	// enforced by a unique index in addition to the service pre-check.
	ErrAlreadyApplied = errors.New("user has already applied to this idea")
)

// Service-level (business logic) errors
var (
	// ErrOwnIdea: an author cannot apply to their own idea.
	ErrOwnIdea = errors.New("cannot apply to your own idea")

	// ErrNotIdeaAuthor: only the idea's author may decide on applications.
	ErrNotIdeaAuthor = errors.New("requester is not the idea author")

	// ErrAlreadyDecided: accepted and rejected are terminal states.
	ErrAlreadyDecided = errors.New("application has already been decided")

	// ErrInvalidTransition: applications never move back to pending.
	ErrInvalidTransition = errors.New("invalid status transition")
)
