// Package store persists pipeline run results in PostgreSQL. The store
// is optional; callers treat a nil *Store as persistence disabled.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS pipeline_runs (
	run_id     TEXT PRIMARY KEY,
	status     TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS pipeline_runs_created_idx ON pipeline_runs (created_at DESC);
`

// RunRecord is one persisted pipeline run.
type RunRecord struct {
	RunID     string    `json:"runId"`
	Status    string    `json:"status"`
	Payload   []byte    `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store struct {
	db *sql.DB
}

// Open connects, verifies the connection, and ensures the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun upserts a run payload under its id.
func (s *Store) SaveRun(ctx context.Context, runID, status string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pipeline_runs (run_id, status, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (run_id)
		DO UPDATE SET status = EXCLUDED.status, payload = EXCLUDED.payload, updated_at = now()`,
		runID, status, payload)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", runID, err)
	}
	return nil
}

// GetRun loads one run by id; sql.ErrNoRows surfaces unchanged so
// callers can map it to a 404.
func (s *Store) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	var rec RunRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id, status, payload, created_at, updated_at
		FROM pipeline_runs WHERE run_id = $1`, runID).
		Scan(&rec.RunID, &rec.Status, &rec.Payload, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRuns returns the most recent runs without their payloads.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, status, created_at, updated_at
		FROM pipeline_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var recs []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.RunID, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
