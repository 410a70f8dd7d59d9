package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"idealink-backend/internal/infrastructure/email"
)

// ============================================
// Application Received Handler
// ============================================

type ApplicationReceivedHandler struct {
	emailService email.EmailService
}

func NewApplicationReceivedHandler(emailService email.EmailService) *ApplicationReceivedHandler {
	return &ApplicationReceivedHandler{
		emailService: emailService,
	}
}

func (h *ApplicationReceivedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload email.ApplicationReceivedData
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ApplicationReceived payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("author_email", payload.AuthorEmail).
		Str("idea_title", payload.IdeaTitle).
		Msg("Processing application-received notification")

	if err := h.emailService.SendApplicationReceived(ctx, payload); err != nil {
		log.Error().Err(err).Msg("Failed to send application-received email")
		return fmt.Errorf("send application received email: %w", err)
	}

	return nil
}

// ============================================
// Application Decided Handler
// ============================================

type ApplicationDecidedHandler struct {
	emailService email.EmailService
}

func NewApplicationDecidedHandler(emailService email.EmailService) *ApplicationDecidedHandler {
	return &ApplicationDecidedHandler{
		emailService: emailService,
	}
}

func (h *ApplicationDecidedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload email.ApplicationDecidedData
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ApplicationDecided payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("applicant_email", payload.ApplicantEmail).
		Str("status", payload.Status).
		Msg("Processing application-decided notification")

	if err := h.emailService.SendApplicationDecided(ctx, payload); err != nil {
		log.Error().Err(err).Msg("Failed to send application-decided email")
		return fmt.Errorf("send application decided email: %w", err)
	}

	return nil
}
