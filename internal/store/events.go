package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures one oracle API call for the request log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a persisted request-log row.
type LLMRequestEvent struct {
	ID           int64
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// EventRepo is the oracle request log: append one row per API call,
// read back most-recent-first.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns up to limit rows, newest first. limit <= 0
	// uses DefaultRecentLimit.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, success, data.ErrorMessage, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert llm request: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	if limit <= 0 || limit > DefaultRecentLimit {
		limit = DefaultRecentLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at
		 FROM llm_requests
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		var success int
		if err := rows.Scan(&e.ID, &e.Provider, &e.Model, &e.Purpose, &e.InputTokens,
			&e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		e.Success = success != 0
		out = append(out, e)
	}
	return out, rows.Err()
}
