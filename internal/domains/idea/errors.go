package idea

import "errors"

var (
	// Not Found
	ErrIdeaNotFound = errors.New("idea not found")

	// Authorization: only the author may mutate an idea.
	ErrNotIdeaOwner = errors.New("requester is not the idea author")
)
