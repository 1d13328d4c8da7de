package llm

import "context"

type contextKey string

const purposeKey contextKey = "oracle_purpose"

// WithPurpose attaches an oracle purpose label (e.g. "question-gen",
// "interview-eval") to the context for request logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
