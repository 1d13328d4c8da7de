package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/prepdrill/internal/store"
)

// LoggingProvider records every oracle request as an event: purpose,
// latency, token usage, outcome.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging wraps a Provider with request event logging.
func WithLogging(p Provider, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Logging failures must not fail the request.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log oracle request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
