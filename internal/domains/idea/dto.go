package idea

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateIdeaRequest posts a new idea. The author fields are the caller's
// identity plus the name/email snapshot to denormalize onto the idea.
type CreateIdeaRequest struct {
	Title            string    `json:"title" binding:"required"`
	ShortDescription string    `json:"shortDescription" binding:"required"`
	LongDescription  string    `json:"longDescription" binding:"required"`
	Category         string    `json:"category" binding:"required"`
	TimeRequired     string    `json:"timeRequired" binding:"required"`
	IsPaid           bool      `json:"isPaid"`
	MembersNeeded    int       `json:"membersNeeded" binding:"required"`
	Professions      []string  `json:"professions" binding:"required"`
	AuthorID         uuid.UUID `json:"authorId" binding:"required"`
	AuthorName       string    `json:"authorName"`
	AuthorEmail      string    `json:"authorEmail"`
}

func (r CreateIdeaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 200),
		),
		validation.Field(&r.ShortDescription,
			validation.Required.Error("short description is required"),
			validation.Length(10, 500),
		),
		validation.Field(&r.LongDescription,
			validation.Required.Error("long description is required"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
		),
		validation.Field(&r.TimeRequired,
			validation.Required.Error("time required is required"),
		),
		validation.Field(&r.MembersNeeded,
			validation.Required.Error("members needed is required"),
			validation.Min(1),
		),
		validation.Field(&r.Professions,
			validation.Required.Error("at least one profession is required"),
			validation.Each(validation.Required),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
			validation.By(uuidNotNil),
		),
		validation.Field(&r.AuthorEmail,
			validation.When(r.AuthorEmail != "", is.Email),
		),
	)
}

// UpdateIdeaRequest rewrites the mutable fields of an idea. AuthorID is the
// requester identity checked against the stored author; the snapshot itself
// is never altered by this path.
type UpdateIdeaRequest struct {
	Title            string    `json:"title" binding:"required"`
	ShortDescription string    `json:"shortDescription" binding:"required"`
	LongDescription  string    `json:"longDescription" binding:"required"`
	Category         string    `json:"category" binding:"required"`
	TimeRequired     string    `json:"timeRequired" binding:"required"`
	IsPaid           bool      `json:"isPaid"`
	MembersNeeded    int       `json:"membersNeeded" binding:"required"`
	Professions      []string  `json:"professions" binding:"required"`
	AuthorID         uuid.UUID `json:"authorId" binding:"required"`
}

func (r UpdateIdeaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.ShortDescription, validation.Required, validation.Length(10, 500)),
		validation.Field(&r.LongDescription, validation.Required),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.TimeRequired, validation.Required),
		validation.Field(&r.MembersNeeded, validation.Required, validation.Min(1)),
		validation.Field(&r.Professions, validation.Required, validation.Each(validation.Required)),
		validation.Field(&r.AuthorID, validation.Required, validation.By(uuidNotNil)),
	)
}

func uuidNotNil(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_uuid_nil", "must be a valid id")
	}
	return nil
}
