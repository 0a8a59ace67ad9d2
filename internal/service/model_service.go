package service

import (
	"context"
	"sort"

	"mathflow/backend/internal/llm"
)

// ModelService exposes the models served by the reasoning provider.
type ModelService struct {
	llm llm.ModelLister
}

func NewModelService(lister llm.ModelLister) *ModelService {
	return &ModelService{llm: lister}
}

// List returns the model IDs sorted alphabetically.
func (s *ModelService) List(ctx context.Context) ([]string, error) {
	ids, err := s.llm.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}
