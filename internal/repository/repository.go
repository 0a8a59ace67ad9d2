package repository

import (
	"context"

	"mathflow/backend/internal/model"
)

// JournalRepository stores one entry per processed problem.
type JournalRepository interface {
	Record(ctx context.Context, entry *model.JournalEntry) error
	ListRecent(ctx context.Context, limit int) ([]*model.JournalEntry, error)
	Get(ctx context.Context, id string) (*model.JournalEntry, error)
}

// SettingsRepository is a flat key/value store.
type SettingsRepository interface {
	All(ctx context.Context) (map[string]string, error)
	PutAll(ctx context.Context, values map[string]string) error
}
