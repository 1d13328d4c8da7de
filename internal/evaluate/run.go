package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/prepdrill/internal/llm"
)

// Runner simulates program execution through the LLM provider. The
// output goes to the console pane only; scoring comes from Evaluate.
type Runner struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewRunner creates a simulated code runner.
func NewRunner(provider llm.Provider, cfg EvaluatorConfig) *Runner {
	return &Runner{provider: provider, cfg: cfg}
}

const runSystemPrompt = `You simulate running a program and report what it would print.

Instructions:
- Mentally execute the code exactly as the named language's interpreter or compiler would.
- output is the program's stdout, verbatim, including trailing newlines the program would print.
- If the code would not compile or would raise, output is the error message the toolchain would show, prefixed with "Error: ".
- Never correct, improve, or comment on the code.`

// Run simulates executing the code. Empty or whitespace-only code is
// rejected with llm.ErrEmptyInput before any network call.
func (r *Runner) Run(ctx context.Context, code, language string) (*RunResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, llm.ErrEmptyInput
	}

	ctx = llm.WithPurpose(ctx, "code-run")

	userMsg := fmt.Sprintf("Language: %s\n\nCode:\n%s", language, code)

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: runSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      RunSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("code run failed: %w", err)
	}

	var out RunResult
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse run output: %w", err)
	}

	return &out, nil
}
