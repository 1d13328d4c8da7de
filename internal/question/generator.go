// Package question generates interview and practice questions through the
// LLM provider, deduplicating against what the session has already asked.
package question

import "context"

// Generator produces assessment questions using an LLM provider.
type Generator interface {
	// Generate produces a single question for the given input context.
	Generate(ctx context.Context, input Input) (*Question, error)
}
