package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"idealink-backend/internal/domains/application"
	"idealink-backend/internal/domains/idea"
	"idealink-backend/internal/infrastructure/email"
	"idealink-backend/internal/infrastructure/queue"
	"idealink-backend/pkg/logger"
)

type applicationService struct {
	repo     application.Repository
	ideaRepo idea.Repository
	enqueuer queue.Enqueuer
}

func NewApplicationService(
	repo application.Repository,
	ideaRepo idea.Repository,
	enqueuer queue.Enqueuer,
) application.Service {
	return &applicationService{
		repo:     repo,
		ideaRepo: ideaRepo,
		enqueuer: enqueuer,
	}
}

func (s *applicationService) Create(ctx context.Context, req application.CreateApplicationRequest) (*application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The idea must exist; its title is denormalized onto the application.
	targetIdea, err := s.ideaRepo.FindByID(ctx, req.IdeaID)
	if err != nil {
		return nil, err // idea.ErrIdeaNotFound maps to 404 at the boundary
	}

	if targetIdea.IsOwnedBy(req.UserID) {
		return nil, application.ErrOwnIdea
	}

	// Pre-check for a friendlier error; the unique index still backstops
	// concurrent duplicate applies.
	exists, err := s.repo.ExistsByIdeaAndUser(ctx, req.IdeaID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate application: %w", err)
	}
	if exists {
		return nil, application.ErrAlreadyApplied
	}

	now := time.Now()
	app := &application.Application{
		ID:          uuid.New(),
		IdeaID:      req.IdeaID,
		IdeaTitle:   targetIdea.Title,
		UserID:      req.UserID,
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		CVLink:      req.CVLink,
		Status:      application.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	// Notify the idea author. An enqueue failure never fails the apply.
	if err := s.enqueuer.EnqueueApplicationReceived(ctx, email.ApplicationReceivedData{
		AuthorEmail:    targetIdea.Author.Email,
		IdeaTitle:      targetIdea.Title,
		ApplicantName:  app.Name,
		ApplicantEmail: app.Email,
	}); err != nil {
		logger.Error("enqueue application-received notification", err)
	}

	return app, nil
}

func (s *applicationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *applicationService) ListByIdeaAuthor(ctx context.Context, authorID uuid.UUID) ([]application.Application, error) {
	return s.repo.ListByIdeaAuthor(ctx, authorID)
}

func (s *applicationService) UpdateStatus(ctx context.Context, id uuid.UUID, req application.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Only the idea's author decides on applications.
	parentIdea, err := s.ideaRepo.FindByID(ctx, app.IdeaID)
	if err != nil {
		return fmt.Errorf("resolve idea for application: %w", err)
	}
	if !parentIdea.IsOwnedBy(req.UserID) {
		return application.ErrNotIdeaAuthor
	}

	if app.Status.IsTerminal() {
		return application.ErrAlreadyDecided
	}
	if req.Status == application.StatusPending {
		return application.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return err
	}

	if err := s.enqueuer.EnqueueApplicationDecided(ctx, email.ApplicationDecidedData{
		ApplicantEmail: app.Email,
		IdeaTitle:      app.IdeaTitle,
		Status:         req.Status.String(),
	}); err != nil {
		logger.Error("enqueue application-decided notification", err)
	}

	return nil
}
