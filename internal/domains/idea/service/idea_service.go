package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"idealink-backend/internal/domains/idea"
)

type ideaService struct {
	repo idea.Repository
}

func NewIdeaService(repo idea.Repository) idea.Service {
	return &ideaService{repo: repo}
}

func (s *ideaService) Create(ctx context.Context, req idea.CreateIdeaRequest) (*idea.Idea, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	newIdea := &idea.Idea{
		ID:               uuid.New(),
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Category:         req.Category,
		TimeRequired:     req.TimeRequired,
		IsPaid:           req.IsPaid,
		MembersNeeded:    req.MembersNeeded,
		Professions:      req.Professions,
		Author: idea.Author{
			ID:    req.AuthorID,
			Name:  req.AuthorName,
			Email: req.AuthorEmail,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, newIdea); err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}

	return newIdea, nil
}

func (s *ideaService) List(ctx context.Context) ([]idea.Idea, error) {
	ideas, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	return ideas, nil
}

func (s *ideaService) GetByID(ctx context.Context, id uuid.UUID) (*idea.Idea, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ideaService) Update(ctx context.Context, id uuid.UUID, req idea.UpdateIdeaRequest) (*idea.Idea, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !existing.IsOwnedBy(req.AuthorID) {
		return nil, idea.ErrNotIdeaOwner
	}

	// Overwrite the mutable fields only; the author snapshot stays as
	// created.
	existing.Title = req.Title
	existing.ShortDescription = req.ShortDescription
	existing.LongDescription = req.LongDescription
	existing.Category = req.Category
	existing.TimeRequired = req.TimeRequired
	existing.IsPaid = req.IsPaid
	existing.MembersNeeded = req.MembersNeeded
	existing.Professions = req.Professions
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *ideaService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !existing.IsOwnedBy(requesterID) {
		return idea.ErrNotIdeaOwner
	}

	return s.repo.Delete(ctx, id)
}
