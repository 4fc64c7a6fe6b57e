package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveScore stores a score report for a jd/resume pair, replacing any
// previous report for the same pair.
func (db *DB) SaveScore(ctx context.Context, jdID string, score *types.ResumeScore) error {
	report, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal score report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO scores (jd_id, resume_id, overall_score, report)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (jd_id, resume_id) DO UPDATE SET
		     overall_score = $3, report = $4, created_at = NOW()`,
		jdID, score.ResumeID, score.OverallScore, report,
	)
	if err != nil {
		return fmt.Errorf("failed to save score for jd %s resume %s: %w", jdID, score.ResumeID, err)
	}
	return nil
}

// GetScore retrieves the stored score report for a jd/resume pair. Returns
// nil, nil when no row exists.
func (db *DB) GetScore(ctx context.Context, jdID, resumeID string) (*types.ResumeScore, error) {
	var report []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM scores WHERE jd_id = $1 AND resume_id = $2`,
		jdID, resumeID,
	).Scan(&report)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score for jd %s resume %s: %w", jdID, resumeID, err)
	}

	var score types.ResumeScore
	if err := json.Unmarshal(report, &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score report: %w", err)
	}
	return &score, nil
}

// ListScoresForJD returns all stored score reports for a job description,
// highest overall score first.
func (db *DB) ListScoresForJD(ctx context.Context, jdID string) ([]types.ResumeScore, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT report FROM scores WHERE jd_id = $1 ORDER BY overall_score DESC`,
		jdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for jd %s: %w", jdID, err)
	}
	defer rows.Close()

	scores := make([]types.ResumeScore, 0)
	for rows.Next() {
		var report []byte
		if err := rows.Scan(&report); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		var score types.ResumeScore
		if err := json.Unmarshal(report, &score); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score row: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// SaveRanking stores every report in a ranking response for its jd.
func (db *DB) SaveRanking(ctx context.Context, ranking *types.RankingResponse) error {
	for i := range ranking.Rankings {
		if err := db.SaveScore(ctx, ranking.JDID, &ranking.Rankings[i]); err != nil {
			return err
		}
	}
	return nil
}
