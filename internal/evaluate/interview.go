package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/session"
)

// EvaluatorConfig holds shared configuration for the answer evaluators.
type EvaluatorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEvaluatorConfig returns sensible defaults. Low temperature:
// grading should be stable, not creative.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// AnswerInput is one answered item headed for evaluation.
type AnswerInput struct {
	Item             session.Item
	Response         string
	TimeSpentSeconds int
}

// validate rejects empty submissions before any oracle call.
func (in AnswerInput) validate() error {
	if strings.TrimSpace(in.Response) == "" {
		return llm.ErrEmptyInput
	}
	return nil
}

// InterviewEvaluator judges interview answers through the LLM provider.
type InterviewEvaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewInterviewEvaluator creates an interview answer evaluator.
func NewInterviewEvaluator(provider llm.Provider, cfg EvaluatorConfig) *InterviewEvaluator {
	return &InterviewEvaluator{provider: provider, cfg: cfg}
}

const interviewEvalSystemPrompt = `You are a senior technical interviewer grading one answer.

Instructions:
- Score accuracy, clarity, depth, relevance, and time_efficiency independently, each 0-100.
- overall_score weights accuracy and depth most heavily.
- Grade against the listed key points: an answer that misses most of them cannot score above 50 on depth.
- If time taken exceeds the expected time, reduce time_efficiency proportionally and list the penalty in penalties_applied.
- next_difficulty: raise after a strong answer, lower after a weak one, keep after an average one.
- Set should_continue=false only when the candidate is so far out of depth that more questions at any level would not be informative; give termination_reason when you do.
- Echo time_taken_seconds and expected_time_seconds from the input; overtime_seconds is their positive difference or 0.
- Feedback is spoken to the candidate: direct, specific, no filler.`

var interviewEvalTemplate = template.Must(template.New("interview-eval").Parse(`Question: {{.Item.Prompt}}
Topic: {{.Item.Topic}}
Difficulty: {{.Item.Difficulty}}

Key points a strong answer covers:
{{range .Item.KeyPoints}}- {{.}}
{{end}}
Candidate's answer:
{{.Response}}

Time taken: {{.TimeSpentSeconds}} seconds
Expected time: {{.Item.ExpectedSeconds}} seconds`))

// Evaluate grades one interview answer. Empty answers are rejected with
// llm.ErrEmptyInput before any network call.
func (e *InterviewEvaluator) Evaluate(ctx context.Context, in AnswerInput) (*InterviewEvaluation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "interview-eval")

	var buf bytes.Buffer
	if err := interviewEvalTemplate.Execute(&buf, in); err != nil {
		return nil, fmt.Errorf("build interview evaluation prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: interviewEvalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      InterviewSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("interview evaluation failed: %w", err)
	}

	var out InterviewEvaluation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse interview evaluation: %w", err)
	}

	return &out, nil
}
