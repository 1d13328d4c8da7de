package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAttempts_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i, score := range []float64{55, 70, 92} {
		err := repo.Append(ctx, AttemptData{
			SessionID:        "s1",
			AssessmentType:   "interview",
			SkillArea:        "go",
			Difficulty:       "medium",
			Score:            score,
			TimeTakenSeconds: 60 + i,
			Metadata:         map[string]any{"verdict": "average"},
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	attempts, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("len = %d, want 3", len(attempts))
	}
	// Most recent first.
	if attempts[0].Score != 92 {
		t.Errorf("first score = %v, want 92 (newest first)", attempts[0].Score)
	}
	if attempts[0].Metadata["verdict"] != "average" {
		t.Errorf("metadata = %v, want verdict preserved", attempts[0].Metadata)
	}
}

func TestAttempts_RecentBounded(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i := 0; i < DefaultRecentLimit+20; i++ {
		err := repo.Append(ctx, AttemptData{
			SessionID:      "s1",
			AssessmentType: "practice",
			Score:          float64(i),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	attempts, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != DefaultRecentLimit {
		t.Errorf("len = %d, want bounded to %d", len(attempts), DefaultRecentLimit)
	}
}

func TestEvents_AppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "question-gen",
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    12,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM llm_requests`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestEvents_RecentLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, purpose := range []string{"question-gen", "interview-eval"} {
		err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:    "mock",
			Model:       "mock",
			Purpose:     purpose,
			InputTokens: 10,
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	events, err := s.Events().RecentLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Purpose != "interview-eval" {
		t.Errorf("first purpose = %q, want newest first", events[0].Purpose)
	}
	if !events[0].Success {
		t.Error("success flag not round-tripped")
	}
}
