package idea

import (
	"time"

	"github.com/google/uuid"
)

// Author is the denormalized snapshot of the posting user, taken at
// creation time. It is intentionally stale: later changes to the user
// record do not propagate here.
type Author struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Idea is a posted project proposal seeking collaborators.
// Author.ID is immutable after creation; every other field except the
// author snapshot may be rewritten by the owner.
type Idea struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	Category         string    `json:"category"`
	TimeRequired     string    `json:"timeRequired"`
	IsPaid           bool      `json:"isPaid"`
	MembersNeeded    int       `json:"membersNeeded"`
	Professions      []string  `json:"professions"`
	Author           Author    `json:"author"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether userID is the idea's author.
func (i *Idea) IsOwnedBy(userID uuid.UUID) bool {
	return i.Author.ID == userID
}
