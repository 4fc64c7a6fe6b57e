package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveResume creates or replaces a resume document.
func (db *DB) SaveResume(ctx context.Context, resume *types.CandidateResume) error {
	doc, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, doc)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET doc = $2, updated_at = NOW()`,
		resume.ID, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume %s: %w", resume.ID, err)
	}
	return nil
}

// GetResume retrieves a resume by ID. Returns nil, nil when no row exists.
func (db *DB) GetResume(ctx context.Context, id string) (*types.CandidateResume, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT doc FROM resumes WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	var resume types.CandidateResume
	if err := json.Unmarshal(doc, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	return &resume, nil
}

// ListResumes returns stored resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, limit, offset int) ([]types.CandidateResume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT doc FROM resumes ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]types.CandidateResume, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		var resume types.CandidateResume
		if err := json.Unmarshal(doc, &resume); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume row: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// DeleteResume removes a resume and its scores. Reports whether a row was
// deleted.
func (db *DB) DeleteResume(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1`, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
