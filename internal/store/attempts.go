package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultRecentLimit bounds read-back when the caller doesn't say.
const DefaultRecentLimit = 100

// AttemptData is one completed item to persist.
type AttemptData struct {
	SessionID        string
	AssessmentType   string // "interview", "practice", "coding"
	SkillArea        string
	Difficulty       string
	Score            float64
	TimeTakenSeconds int

	// Metadata holds mode-specific extras (verdict, passed counts, topic).
	Metadata map[string]any
}

// Attempt is a persisted history row.
type Attempt struct {
	ID               int64
	SessionID        string
	AssessmentType   string
	SkillArea        string
	Difficulty       string
	Score            float64
	TimeTakenSeconds int
	Metadata         map[string]any
	CreatedAt        time.Time
}

// AttemptRepo is the history persistence surface: append one row per
// completed item, read back most-recent-first.
type AttemptRepo interface {
	Append(ctx context.Context, data AttemptData) error

	// Recent returns up to limit attempts, newest first. limit <= 0 uses
	// DefaultRecentLimit.
	Recent(ctx context.Context, limit int) ([]Attempt, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	meta := data.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempts
			(session_id, assessment_type, skill_area, difficulty, score, time_taken_seconds, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.AssessmentType, data.SkillArea, data.Difficulty,
		data.Score, data.TimeTakenSeconds, string(metaJSON), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 || limit > DefaultRecentLimit {
		limit = DefaultRecentLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, assessment_type, skill_area, difficulty, score, time_taken_seconds, metadata, created_at
		 FROM attempts
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var metaJSON string
		if err := rows.Scan(&a.ID, &a.SessionID, &a.AssessmentType, &a.SkillArea,
			&a.Difficulty, &a.Score, &a.TimeTakenSeconds, &metaJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(metaJSON), &a.Metadata); err != nil {
			a.Metadata = map[string]any{}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
