package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pgen/pgen-go/internal/model"
)

var ErrNoDatabase = errors.New("no database configured")

const schemaQuery = `
	CREATE TABLE IF NOT EXISTS generation_events (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		classes       VARCHAR(64) NOT NULL,
		length        INT NOT NULL,
		allow_repeats BOOLEAN NOT NULL,
		outcome       VARCHAR(32) NOT NULL,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_events_outcome (outcome)
	)`

// GenerationRepository stores generation events. It never sees the
// generated strings.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new GenerationRepository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// EnsureSchema creates the events table if it does not exist.
func (r *GenerationRepository) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return ErrNoDatabase
	}
	_, err := r.db.ExecContext(ctx, schemaQuery)
	return err
}

// Record inserts an event and sets the generated ID on it.
func (r *GenerationRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	if r.db == nil {
		return ErrNoDatabase
	}

	query := `INSERT INTO generation_events (classes, length, allow_repeats, outcome) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, event.Classes, event.Length, event.AllowRepeats, event.Outcome)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// Stats aggregates recorded events by outcome.
func (r *GenerationRepository) Stats(ctx context.Context) (model.StatsResponse, error) {
	if r.db == nil {
		return model.StatsResponse{}, ErrNoDatabase
	}

	query := `SELECT outcome, COUNT(*), COALESCE(AVG(length), 0)
		FROM generation_events GROUP BY outcome`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.StatsResponse{}, err
	}
	defer rows.Close()

	stats := model.StatsResponse{ByOutcome: make(map[string]model.OutcomeStats)}
	for rows.Next() {
		var outcome string
		var s model.OutcomeStats
		if err := rows.Scan(&outcome, &s.Count, &s.AverageLength); err != nil {
			return model.StatsResponse{}, err
		}
		stats.ByOutcome[outcome] = s
		stats.Total += s.Count
	}

	return stats, rows.Err()
}
