package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/prepdrill/internal/llm"
)

// PracticeEvaluator judges practice answers through the LLM provider.
type PracticeEvaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewPracticeEvaluator creates a practice answer evaluator.
func NewPracticeEvaluator(provider llm.Provider, cfg EvaluatorConfig) *PracticeEvaluator {
	return &PracticeEvaluator{provider: provider, cfg: cfg}
}

const practiceEvalSystemPrompt = `You are a study coach reviewing one practice answer.

Instructions:
- Score the answer 0-100 against the listed key points.
- strengths and improvements refer to this answer specifically, not generic advice.
- model_answer is a complete answer covering every key point, written the way you would say it in an interview.
- coaching_tips are concrete: what to read, what to rehearse, what phrasing to drop.
- next_topic_suggestion names one adjacent topic this answer shows a gap in.
- Never scold about time; practice is untimed coaching.`

var practiceEvalTemplate = template.Must(template.New("practice-eval").Parse(`Question: {{.Item.Prompt}}
Topic: {{.Item.Topic}}
Difficulty: {{.Item.Difficulty}}

Key points a complete answer covers:
{{range .Item.KeyPoints}}- {{.}}
{{end}}
Learner's answer:
{{.Response}}

Time taken: {{.TimeSpentSeconds}} seconds
Expected time: {{.Item.ExpectedSeconds}} seconds`))

// Evaluate reviews one practice answer. Empty answers are rejected with
// llm.ErrEmptyInput before any network call.
func (e *PracticeEvaluator) Evaluate(ctx context.Context, in AnswerInput) (*PracticeEvaluation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "practice-eval")

	var buf bytes.Buffer
	if err := practiceEvalTemplate.Execute(&buf, in); err != nil {
		return nil, fmt.Errorf("build practice evaluation prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: practiceEvalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      PracticeSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("practice evaluation failed: %w", err)
	}

	var out PracticeEvaluation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse practice evaluation: %w", err)
	}

	return &out, nil
}
