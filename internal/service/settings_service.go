package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	apperrors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/llm"
	"mathflow/backend/internal/repository"
)

const (
	keyReasoningModel    = "reasoning_model"
	keySampleCount       = "sample_count"
	keySelectionStrategy = "selection_strategy"
)

// Settings holds the runtime-editable tutoring parameters stored in SQLite.
type Settings struct {
	ReasoningModel    string `json:"reasoning_model" validate:"required" example:"openai/gpt-oss-20b"`
	SampleCount       int    `json:"sample_count" validate:"min=1,max=5" example:"3"`
	SelectionStrategy string `json:"selection_strategy" validate:"oneof=first vote" example:"first"`
}

type SettingsService struct {
	repo     repository.SettingsRepository
	models   llm.ModelLister
	defaults Settings
}

// NewSettingsService takes the values used for any key not yet stored.
func NewSettingsService(repo repository.SettingsRepository, models llm.ModelLister, defaults Settings) *SettingsService {
	return &SettingsService{repo: repo, models: models, defaults: defaults}
}

// InitAndGet loads the settings and persists defaults for any missing key.
func (s *SettingsService) InitAndGet(ctx context.Context) (*Settings, error) {
	values, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	settings := s.fromValues(values)

	complete := true
	for _, k := range []string{keyReasoningModel, keySampleCount, keySelectionStrategy} {
		if _, ok := values[k]; !ok {
			complete = false
			break
		}
	}
	if complete {
		slog.Info("Found existing settings in database.")
		return settings, nil
	}

	slog.Info("Settings incomplete, writing defaults.", "reasoning_model", settings.ReasoningModel)
	if err := s.repo.PutAll(ctx, toValues(settings)); err != nil {
		return nil, fmt.Errorf("failed to save initial settings: %w", err)
	}
	return settings, nil
}

// Get returns the stored settings, with defaults for missing or unreadable keys.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	values, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return s.fromValues(values), nil
}

// Save checks the reasoning model against the provider when it can be reached.
// An unreachable provider only produces a warning.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	available, err := s.models.ListModels(ctx)
	if err != nil {
		slog.Warn("Could not list models for validation, saving settings without check.", "error", err)
	} else if !slices.Contains(available, settings.ReasoningModel) {
		return fmt.Errorf("le modèle de raisonnement '%s' n'est pas disponible: %w", settings.ReasoningModel, apperrors.ErrValidation)
	}

	if err := s.repo.PutAll(ctx, toValues(settings)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *SettingsService) fromValues(values map[string]string) *Settings {
	out := s.defaults
	if v := values[keyReasoningModel]; v != "" {
		out.ReasoningModel = v
	}
	if v, ok := values[keySampleCount]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 5 {
			out.SampleCount = n
		} else {
			slog.Warn("Ignoring invalid stored sample count.", "value", v)
		}
	}
	if v := values[keySelectionStrategy]; v == "first" || v == "vote" {
		out.SelectionStrategy = v
	}
	return &out
}

func toValues(s *Settings) map[string]string {
	return map[string]string{
		keyReasoningModel:    s.ReasoningModel,
		keySampleCount:       strconv.Itoa(s.SampleCount),
		keySelectionStrategy: s.SelectionStrategy,
	}
}
