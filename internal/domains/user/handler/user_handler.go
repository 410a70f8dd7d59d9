package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"idealink-backend/internal/domains/user"
	"idealink-backend/internal/shared/response"
	"idealink-backend/pkg/jwt"
	"idealink-backend/pkg/logger"
)

// UserHandler handles HTTP requests for the user domain. Stateless; holds
// only dependencies.
type UserHandler struct {
	service    user.Service
	jwtManager *jwt.Manager
}

func NewUserHandler(service user.Service, jwtManager *jwt.Manager) *UserHandler {
	return &UserHandler{
		service:    service,
		jwtManager: jwtManager,
	}
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userDTO, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(userDTO.ID.String(), userDTO.Email)
	if err != nil {
		logger.Error("generate token", err)
		response.InternalServerError(c, "could not establish session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  userDTO,
		"token": token,
	})
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userDTO, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(userDTO.ID.String(), userDTO.Email)
	if err != nil {
		logger.Error("generate token", err)
		response.InternalServerError(c, "could not establish session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  userDTO,
		"token": token,
	})
}

// GetProfile handles GET /users/me (behind AuthMiddleware).
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := c.MustGet("userID").(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "invalid session")
		return
	}

	userDTO, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userDTO})
}

// handleError maps domain errors to HTTP status codes.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", validationErrs)
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.BadRequest(c, "an account with this email already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	default:
		logger.Error("user handler", err)
		response.InternalServerError(c, "something went wrong")
	}
}
