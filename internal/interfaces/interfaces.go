package interfaces

import (
	"context"

	"mathflow/backend/internal/model"
	"mathflow/backend/internal/service"
)

// This file defines the interfaces for our core services.
// The API layer depends on these rather than on concrete services, so handlers
// can be tested against mocks.

// TutorService solves problems and reads LaTeX from images.
type TutorService interface {
	Process(ctx context.Context, req *model.ProblemRequest) (*model.StructuredAnswer, error)
	ExtractLatex(ctx context.Context, image model.ImagePayload) (string, error)
}

// SpeechService turns text into base64 audio or a soft error.
type SpeechService interface {
	Generate(ctx context.Context, text string) *model.SpeechResponse
}

// SettingsService defines the contract for managing runtime settings.
type SettingsService interface {
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}

// ModelService lists the models offered by the reasoning provider.
type ModelService interface {
	List(ctx context.Context) ([]string, error)
}

// JournalService reads processed-problem history.
type JournalService interface {
	List(ctx context.Context, limit int) ([]*model.JournalEntry, error)
	Get(ctx context.Context, id string) (*model.JournalEntry, error)
}
