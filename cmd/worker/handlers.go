package main

import (
	"github.com/hibiken/asynq"

	"idealink-backend/internal/infrastructure/email"
	"idealink-backend/internal/infrastructure/email/job"
	"idealink-backend/internal/infrastructure/queue"
)

// HandlerRegistry holds every task handler the worker serves.
type HandlerRegistry struct {
	applicationReceived *job.ApplicationReceivedHandler
	applicationDecided  *job.ApplicationDecidedHandler
}

func initializeHandlers(cfg *Config) *HandlerRegistry {
	emailService := email.NewDevEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	return &HandlerRegistry{
		applicationReceived: job.NewApplicationReceivedHandler(emailService),
		applicationDecided:  job.NewApplicationDecidedHandler(emailService),
	}
}

func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(queue.TypeApplicationReceived, r.applicationReceived)
	mux.Handle(queue.TypeApplicationDecided, r.applicationDecided)
}
