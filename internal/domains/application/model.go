package application

import (
	"time"

	"github.com/google/uuid"
)

// Status of an application. Initial state is pending; pending moves to
// accepted or rejected, and both of those are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

// Application is a user's request to join an idea. IdeaTitle is a
// denormalized snapshot taken at creation time.
type Application struct {
	ID          uuid.UUID `json:"id"`
	IdeaID      uuid.UUID `json:"ideaId"`
	IdeaTitle   string    `json:"ideaTitle"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CoverLetter string    `json:"coverLetter"`
	CVLink      string    `json:"cvLink"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
