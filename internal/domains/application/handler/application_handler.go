package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"idealink-backend/internal/domains/application"
	"idealink-backend/internal/domains/idea"
	"idealink-backend/internal/shared/response"
	"idealink-backend/pkg/logger"
)

type ApplicationHandler struct {
	service application.Service
}

func NewApplicationHandler(service application.Service) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Create handles POST /applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req application.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "all fields are required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": created})
}

// List handles GET /applications?userId=|ideaAuthorId=.
func (h *ApplicationHandler) List(c *gin.Context) {
	if userIDParam := c.Query("userId"); userIDParam != "" {
		userID, err := uuid.Parse(userIDParam)
		if err != nil {
			response.BadRequest(c, "invalid userId")
			return
		}

		apps, err := h.service.ListByUser(c.Request.Context(), userID)
		if err != nil {
			h.handleError(c, err)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"applications": apps})
		return
	}

	if authorIDParam := c.Query("ideaAuthorId"); authorIDParam != "" {
		authorID, err := uuid.Parse(authorIDParam)
		if err != nil {
			response.BadRequest(c, "invalid ideaAuthorId")
			return
		}

		apps, err := h.service.ListByIdeaAuthor(c.Request.Context(), authorID)
		if err != nil {
			h.handleError(c, err)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"applications": apps})
		return
	}

	response.BadRequest(c, "either userId or ideaAuthorId is required")
}

// UpdateStatus handles PATCH /applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	var req application.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status and userId are required")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "status updated successfully"})
}

func (h *ApplicationHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", validationErrs)
	case errors.Is(err, idea.ErrIdeaNotFound):
		response.NotFound(c, "idea not found")
	case errors.Is(err, application.ErrApplicationNotFound):
		response.NotFound(c, "application not found")
	case errors.Is(err, application.ErrOwnIdea):
		response.BadRequest(c, "you cannot apply to your own idea")
	case errors.Is(err, application.ErrAlreadyApplied):
		response.BadRequest(c, "you have already applied to this idea")
	case errors.Is(err, application.ErrNotIdeaAuthor):
		response.Forbidden(c, "only the idea author can decide on applications")
	case errors.Is(err, application.ErrAlreadyDecided):
		response.BadRequest(c, "this application has already been decided")
	case errors.Is(err, application.ErrInvalidTransition):
		response.BadRequest(c, "applications cannot be moved back to pending")
	default:
		logger.Error("application handler", err)
		response.InternalServerError(c, "something went wrong")
	}
}
