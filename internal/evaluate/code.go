package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/prepdrill/internal/challenge"
	"github.com/abhisek/prepdrill/internal/llm"
)

// CodeInput is one code submission headed for evaluation.
type CodeInput struct {
	Code                 string
	Language             string
	ChallengeTitle       string
	ChallengeDescription string
	TestCases            []challenge.TestCase
	TimeSpentSeconds     int
	ExpectedMinutes      int
}

// validate rejects empty submissions before any oracle call.
func (in CodeInput) validate() error {
	if strings.TrimSpace(in.Code) == "" {
		return llm.ErrEmptyInput
	}
	return nil
}

// CodeEvaluator judges code submissions through the LLM provider.
type CodeEvaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewCodeEvaluator creates a code submission evaluator.
func NewCodeEvaluator(provider llm.Provider, cfg EvaluatorConfig) *CodeEvaluator {
	return &CodeEvaluator{provider: provider, cfg: cfg}
}

const codeEvalSystemPrompt = `You are a code reviewer grading a solution to a coding challenge.

Instructions:
- Trace the code against every provided test case. Report each in test_results, in order, with the output the code would actually produce.
- passed_count and total_count must match test_results exactly.
- code_quality scores readability, efficiency, and correctness independently, each 0-100; correctness considers edge cases beyond the listed tests.
- score weights test results most heavily, then correctness, then the other quality dimensions.
- feedback is spoken to the candidate: direct, specific, no filler.
- suggestions name concrete code changes, not themes.`

var codeEvalTemplate = template.Must(template.New("code-eval").Parse(`Challenge: {{.ChallengeTitle}}
{{.ChallengeDescription}}

Language: {{.Language}}

Test cases:
{{range .TestCases}}- id={{.ID}} input={{.Input}} expected={{.ExpectedOutput}}
{{end}}
Submitted code:
{{.Code}}

Time taken: {{.TimeSpentSeconds}} seconds
Expected time: {{.ExpectedMinutes}} minutes`))

// Evaluate grades one code submission. Empty or whitespace-only code is
// rejected with llm.ErrEmptyInput before any network call.
func (e *CodeEvaluator) Evaluate(ctx context.Context, in CodeInput) (*CodeEvaluation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "code-eval")

	var buf bytes.Buffer
	if err := codeEvalTemplate.Execute(&buf, in); err != nil {
		return nil, fmt.Errorf("build code evaluation prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: codeEvalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      CodeSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("code evaluation failed: %w", err)
	}

	var out CodeEvaluation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse code evaluation: %w", err)
	}

	return &out, nil
}
