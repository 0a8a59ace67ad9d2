package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/model"
	"mathflow/backend/internal/repository"
)

const (
	DefaultJournalLimit = 20
	MaxJournalLimit     = 100
)

// JournalService reads the problem journal.
type JournalService struct {
	repo repository.JournalRepository
}

func NewJournalService(repo repository.JournalRepository) *JournalService {
	return &JournalService{repo: repo}
}

// List returns the most recent entries. A non-positive limit means the
// default; larger values are capped.
func (s *JournalService) List(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultJournalLimit
	case limit > MaxJournalLimit:
		limit = MaxJournalLimit
	}
	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list journal: %w", err)
	}
	return entries, nil
}

func (s *JournalService) Get(ctx context.Context, id string) (*model.JournalEntry, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("journal entry %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get journal entry: %w", err)
	}
	return entry, nil
}
