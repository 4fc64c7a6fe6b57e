package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveJobDescription creates or replaces a job description document.
func (db *DB) SaveJobDescription(ctx context.Context, jd *types.JobDescription) error {
	doc, err := json.Marshal(jd)
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_descriptions (id, doc)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET doc = $2, updated_at = NOW()`,
		jd.ID, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save job description %s: %w", jd.ID, err)
	}
	return nil
}

// GetJobDescription retrieves a job description by ID. Returns nil, nil when
// no row exists.
func (db *DB) GetJobDescription(ctx context.Context, id string) (*types.JobDescription, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT doc FROM job_descriptions WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description %s: %w", id, err)
	}

	var jd types.JobDescription
	if err := json.Unmarshal(doc, &jd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job description %s: %w", id, err)
	}
	return &jd, nil
}

// ListJobDescriptions returns stored job descriptions, newest first.
func (db *DB) ListJobDescriptions(ctx context.Context, limit, offset int) ([]types.JobDescription, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT doc FROM job_descriptions ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	defer rows.Close()

	jds := make([]types.JobDescription, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan job description row: %w", err)
		}
		var jd types.JobDescription
		if err := json.Unmarshal(doc, &jd); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job description row: %w", err)
		}
		jds = append(jds, jd)
	}
	return jds, rows.Err()
}

// DeleteJobDescription removes a job description and its scores. Reports
// whether a row was deleted.
func (db *DB) DeleteJobDescription(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM job_descriptions WHERE id = $1`, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete job description %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
