// Package llm is the oracle transport layer: a provider abstraction over
// LLM APIs with structured (JSON Schema) output, a typed error taxonomy,
// and decorator middleware for rate limiting, retries, and request logging.
// The session engine consumes oracles through this package and never
// depends on a concrete vendor SDK.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction every oracle client is built on.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema, the response Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one oracle call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Oracle calls here are single-turn:
	// one user message.
	Messages []Message

	// Schema, when set, selects the provider's native structured-output
	// mechanism and triggers response validation. When nil the Content is
	// raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero value means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema an oracle response must conform to.
type Schema struct {
	// Name identifies the schema (kebab-case, e.g. "interview-question").
	Name string

	// Description guides the model toward the intended shape.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the oracle's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, otherwise
	// the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
