package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"mathflow/backend/internal/model"
)

const journalColumns = "id, created_at, source, problem, mode, matched_rule, samples_requested, samples_succeeded, fallback, duration_ms"

type sqliteJournal struct {
	db *sql.DB
}

func NewSQLiteJournal(db *sql.DB) JournalRepository {
	return &sqliteJournal{db: db}
}

// Record fills in ID and CreatedAt when they are unset.
func (r *sqliteJournal) Record(ctx context.Context, e *model.JournalEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	query := "INSERT INTO journal (" + journalColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.CreatedAt, e.Source, e.Problem, e.Mode, e.MatchedRule,
		e.SamplesRequested, e.SamplesSucceeded, e.Fallback, e.DurationMs)
	if err != nil {
		return fmt.Errorf("could not insert journal entry: %w", err)
	}
	return nil
}

func (r *sqliteJournal) ListRecent(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	query := "SELECT " + journalColumns + " FROM journal ORDER BY created_at DESC LIMIT ?"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*model.JournalEntry{}
	for rows.Next() {
		var e model.JournalEntry
		if err := scanEntry(rows, &e); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *sqliteJournal) Get(ctx context.Context, id string) (*model.JournalEntry, error) {
	query := "SELECT " + journalColumns + " FROM journal WHERE id = ?"
	var e model.JournalEntry
	if err := scanEntry(r.db.QueryRowContext(ctx, query, id), &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner, e *model.JournalEntry) error {
	return s.Scan(&e.ID, &e.CreatedAt, &e.Source, &e.Problem, &e.Mode, &e.MatchedRule,
		&e.SamplesRequested, &e.SamplesSucceeded, &e.Fallback, &e.DurationMs)
}

type sqliteSettings struct {
	db *sql.DB
}

func NewSQLiteSettings(db *sql.DB) SettingsRepository {
	return &sqliteSettings{db: db}
}

func (r *sqliteSettings) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		values[k] = v
	}
	return values, rows.Err()
}

// PutAll upserts every pair in a single transaction, in key order.
func (r *sqliteSettings) PutAll(ctx context.Context, values map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return fmt.Errorf("could not prepare statement: %w", err)
	}
	defer stmt.Close()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := stmt.ExecContext(ctx, k, values[k]); err != nil {
			return fmt.Errorf("could not save setting %q: %w", k, err)
		}
	}
	return tx.Commit()
}
