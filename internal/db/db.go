// Package db provides optional PostgreSQL persistence of tailoring runs and
// their step artifacts.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Artifact step names. Stable: reports reference them across runs.
const (
	StepRelevanceMap     = "relevance_map"
	StepLayoutPlan       = "layout_plan"
	StepComplianceReport = "compliance_report"
	StepMatchReport      = "match_report"
	StepGeneratedResume  = "generated_resume"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the run and artifact tables if they do not exist
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tailoring_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			role_type TEXT NOT NULL,
			seniority TEXT NOT NULL,
			status TEXT NOT NULL,
			overall_match INT,
			compliance_score INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS run_artifacts (
			run_id UUID NOT NULL REFERENCES tailoring_runs(id) ON DELETE CASCADE,
			step TEXT NOT NULL,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (run_id, step)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// CreateRun creates a new tailoring run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, roleType, seniority string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO tailoring_runs (role_type, seniority, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		roleType, seniority, StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a run as finished with its headline figures
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, overallMatch, complianceScore int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE tailoring_runs
		 SET status = $1, overall_match = $2, compliance_score = $3, completed_at = NOW()
		 WHERE id = $4`,
		status, overallMatch, complianceScore, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveArtifact stores a JSON artifact for a run, replacing any previous
// artifact for the same step
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, step string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, step, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, step) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, step, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", step, err)
	}
	return nil
}

// GetArtifact loads a JSON artifact for a run, returning nil when the step
// has no stored artifact
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, step string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM run_artifacts WHERE run_id = $1 AND step = $2`,
		runID, step,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact %s: %w", step, err)
	}
	return content, nil
}
