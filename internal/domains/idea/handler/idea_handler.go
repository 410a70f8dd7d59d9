package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"idealink-backend/internal/domains/idea"
	"idealink-backend/internal/shared/response"
	"idealink-backend/pkg/logger"
)

type IdeaHandler struct {
	service idea.Service
}

func NewIdeaHandler(service idea.Service) *IdeaHandler {
	return &IdeaHandler{service: service}
}

// Create handles POST /ideas.
func (h *IdeaHandler) Create(c *gin.Context) {
	var req idea.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "all required fields must be provided")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"idea": created})
}

// List handles GET /ideas.
func (h *IdeaHandler) List(c *gin.Context) {
	ideas, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ideas": ideas})
}

// GetByID handles GET /ideas/:id.
func (h *IdeaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid idea id")
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"idea": found})
}

// Update handles PATCH /ideas/:id.
func (h *IdeaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid idea id")
		return
	}

	var req idea.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "all required fields must be provided")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"idea": updated})
}

// Delete handles DELETE /ideas/:id?userId=.
func (h *IdeaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid idea id")
		return
	}

	userIDParam := c.Query("userId")
	if userIDParam == "" {
		response.BadRequest(c, "userId query parameter is required")
		return
	}

	requesterID, err := uuid.Parse(userIDParam)
	if err != nil {
		response.BadRequest(c, "invalid userId")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, requesterID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "idea deleted successfully"})
}

func (h *IdeaHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", validationErrs)
	case errors.Is(err, idea.ErrIdeaNotFound):
		response.NotFound(c, "idea not found")
	case errors.Is(err, idea.ErrNotIdeaOwner):
		response.Forbidden(c, "you do not have permission to modify this idea")
	default:
		logger.Error("idea handler", err)
		response.InternalServerError(c, "something went wrong")
	}
}
