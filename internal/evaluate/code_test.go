package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/prepdrill/internal/challenge"
	"github.com/abhisek/prepdrill/internal/llm"
)

func testCodeInput() CodeInput {
	return CodeInput{
		Code:                 "function twoSum(nums, target) { return [0, 1]; }",
		Language:             challenge.LangJavaScript,
		ChallengeTitle:       "Two Sum",
		ChallengeDescription: "Find indices of two numbers adding to the target.",
		TestCases: []challenge.TestCase{
			{ID: "ts-1", Input: "9\n2 7 11 15", ExpectedOutput: "0 1"},
			{ID: "ts-2", Input: "6\n3 2 4", ExpectedOutput: "1 2"},
		},
		TimeSpentSeconds: 420,
		ExpectedMinutes:  15,
	}
}

func codeEvalJSON() json.RawMessage {
	return json.RawMessage(`{
		"score": 40,
		"test_results": [
			{"id": "ts-1", "passed": true, "actual_output": "0 1", "explanation": "hardcoded indices happen to match"},
			{"id": "ts-2", "passed": false, "actual_output": "0 1", "explanation": "always returns [0, 1]"}
		],
		"passed_count": 1,
		"total_count": 2,
		"code_quality": {"readability": 70, "efficiency": 50, "correctness": 10},
		"feedback": "The solution hardcodes the answer instead of searching.",
		"suggestions": ["use a map from value to index"]
	}`)
}

func TestCodeEvaluate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: codeEvalJSON()})
	ev := NewCodeEvaluator(mock, DefaultEvaluatorConfig())

	out, err := ev.Evaluate(context.Background(), testCodeInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PassedCount != 1 || out.TotalCount != 2 {
		t.Errorf("unexpected counts: %d/%d", out.PassedCount, out.TotalCount)
	}
	if len(out.TestResults) != 2 {
		t.Fatalf("expected 2 test results, got %d", len(out.TestResults))
	}
	if out.TestResults[1].Passed {
		t.Error("expected second test to fail")
	}
	if out.CodeQuality.Correctness != 10 {
		t.Errorf("unexpected correctness: %v", out.CodeQuality.Correctness)
	}
}

func TestCodeEvaluate_WhitespaceCodeRejected(t *testing.T) {
	mock := llm.NewMockProvider()
	ev := NewCodeEvaluator(mock, DefaultEvaluatorConfig())

	in := testCodeInput()
	in.Code = "   \n\t  "

	_, err := ev.Evaluate(context.Background(), in)
	if !errors.Is(err, llm.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("oracle must not be called for whitespace-only code")
	}
}

func TestCodeEvaluate_PromptCarriesTestCases(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: codeEvalJSON()})
	ev := NewCodeEvaluator(mock, DefaultEvaluatorConfig())

	if _, err := ev.Evaluate(context.Background(), testCodeInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "id=ts-1") || !strings.Contains(msg, "id=ts-2") {
		t.Errorf("prompt missing test cases:\n%s", msg)
	}
	if !strings.Contains(msg, "Language: javascript") {
		t.Errorf("prompt missing language:\n%s", msg)
	}
}

func TestRun_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"output": "fox brown quick the\n"}`),
	})
	r := NewRunner(mock, DefaultEvaluatorConfig())

	out, err := r.Run(context.Background(), "print('hi')", challenge.LangPython)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Output != "fox brown quick the\n" {
		t.Errorf("unexpected output: %q", out.Output)
	}
}

func TestRun_EmptyCodeRejected(t *testing.T) {
	mock := llm.NewMockProvider()
	r := NewRunner(mock, DefaultEvaluatorConfig())

	_, err := r.Run(context.Background(), "  ", challenge.LangPython)
	if !errors.Is(err, llm.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("oracle must not be called for empty code")
	}
}
