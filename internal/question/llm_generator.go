package question

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/session"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before conversion.
type questionOutput struct {
	Question            string   `json:"question"`
	Difficulty          string   `json:"difficulty"`
	ExpectedTimeSeconds int      `json:"expected_time_seconds"`
	Topic               string   `json:"topic"`
	KeyPoints           []string `json:"key_points"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt(input.Mode),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      Schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse question response: %w", err)
	}

	// The schema constrains the enum, but the served level still goes
	// through ParseLevel so a future schema relaxation cannot smuggle an
	// unknown value into session state.
	level, ok := session.ParseLevel(raw.Difficulty)
	if !ok {
		level = input.Difficulty
	}

	return &Question{
		Text:            raw.Question,
		Difficulty:      level,
		ExpectedSeconds: raw.ExpectedTimeSeconds,
		Topic:           raw.Topic,
		KeyPoints:       raw.KeyPoints,
	}, nil
}
