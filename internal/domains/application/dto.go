package application

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateApplicationRequest applies to an idea. UserID is the caller's
// identity; name/email/coverLetter/cvLink are the application contents.
type CreateApplicationRequest struct {
	IdeaID      uuid.UUID `json:"ideaId" binding:"required"`
	UserID      uuid.UUID `json:"userId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Email       string    `json:"email" binding:"required"`
	CoverLetter string    `json:"coverLetter" binding:"required"`
	CVLink      string    `json:"cvLink" binding:"required"`
}

func (r CreateApplicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IdeaID,
			validation.Required.Error("idea id is required"),
			validation.By(uuidNotNil),
		),
		validation.Field(&r.UserID,
			validation.Required.Error("user id is required"),
			validation.By(uuidNotNil),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.CoverLetter,
			validation.Required.Error("cover letter is required"),
		),
		validation.Field(&r.CVLink,
			validation.Required.Error("cv link is required"),
			is.URL.Error("cv link must be a valid URL"),
		),
	)
}

// UpdateStatusRequest decides on an application. UserID is the requester,
// checked against the idea's author.
type UpdateStatusRequest struct {
	Status Status    `json:"status" binding:"required"`
	UserID uuid.UUID `json:"userId" binding:"required"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusPending, StatusAccepted, StatusRejected).Error("status must be pending, accepted or rejected"),
		),
		validation.Field(&r.UserID,
			validation.Required.Error("user id is required"),
			validation.By(uuidNotNil),
		),
	)
}

func uuidNotNil(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_uuid_nil", "must be a valid id")
	}
	return nil
}
