package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/session"
)

func testItem() session.Item {
	return session.Item{
		Prompt:          "Explain how a hash map handles collisions.",
		Topic:           "data structures",
		Difficulty:      session.LevelMedium,
		ExpectedSeconds: 180,
		KeyPoints:       []string{"chaining", "open addressing", "load factor"},
	}
}

func interviewEvalJSON() json.RawMessage {
	return json.RawMessage(`{
		"accuracy": 82, "clarity": 75, "depth": 70, "relevance": 90,
		"time_efficiency": 95, "overall_score": 78,
		"verdict": "average",
		"feedback": "Solid on chaining, thin on open addressing.",
		"strengths": ["clear chaining explanation"],
		"improvements": ["cover probing strategies"],
		"penalties_applied": [],
		"next_difficulty": "medium",
		"should_continue": true,
		"termination_reason": "",
		"time_taken_seconds": 150,
		"expected_time_seconds": 180,
		"overtime_seconds": 0
	}`)
}

func TestInterviewEvaluate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: interviewEvalJSON()})
	ev := NewInterviewEvaluator(mock, DefaultEvaluatorConfig())

	out, err := ev.Evaluate(context.Background(), AnswerInput{
		Item:             testItem(),
		Response:         "Collisions are handled by chaining...",
		TimeSpentSeconds: 150,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OverallScore != 78 {
		t.Errorf("unexpected overall score: %v", out.OverallScore)
	}
	if out.Verdict != "average" {
		t.Errorf("unexpected verdict: %q", out.Verdict)
	}
	if !out.ShouldContinue {
		t.Error("expected should_continue=true")
	}
}

func TestInterviewEvaluate_EmptyAnswerRejectedBeforeOracle(t *testing.T) {
	mock := llm.NewMockProvider()
	ev := NewInterviewEvaluator(mock, DefaultEvaluatorConfig())

	_, err := ev.Evaluate(context.Background(), AnswerInput{
		Item:     testItem(),
		Response: "   \n\t",
	})
	if !errors.Is(err, llm.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("oracle must not be called for empty input, got %d calls", mock.CallCount())
	}
}

func TestInterviewEvaluate_PromptCarriesKeyPoints(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: interviewEvalJSON()})
	ev := NewInterviewEvaluator(mock, DefaultEvaluatorConfig())

	_, err := ev.Evaluate(context.Background(), AnswerInput{
		Item:             testItem(),
		Response:         "Chaining.",
		TimeSpentSeconds: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, kp := range []string{"chaining", "open addressing", "load factor"} {
		if !strings.Contains(msg, kp) {
			t.Errorf("prompt missing key point %q:\n%s", kp, msg)
		}
	}
	if !strings.Contains(msg, "Time taken: 30 seconds") {
		t.Errorf("prompt missing time taken:\n%s", msg)
	}
}

func TestInterviewEvaluation_SessionConversion(t *testing.T) {
	ev := &InterviewEvaluation{
		OverallScore:      42,
		Verdict:           "weak",
		Feedback:          "Too shallow.",
		NextDifficulty:    "easy",
		ShouldContinue:    false,
		TerminationReason: "insufficient depth",
	}

	s := ev.Session()
	if s.Score != 42 || s.Verdict != "weak" {
		t.Errorf("score/verdict not carried: %+v", s)
	}
	if s.ShouldContinue {
		t.Error("termination not carried")
	}
	if s.TerminationReason != "insufficient depth" {
		t.Errorf("unexpected reason: %q", s.TerminationReason)
	}
	if s.Detail != ev {
		t.Error("detail must carry the full oracle payload")
	}
}
