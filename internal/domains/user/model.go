package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential-store entity. Emails are persisted lower-cased so
// uniqueness is case-insensitive.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // never expose in JSON
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Sanitize removes sensitive data before sending to a client.
func (u *User) Sanitize() {
	u.PasswordHash = ""
}
