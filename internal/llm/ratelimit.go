package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitProvider throttles outgoing requests with a token bucket so an
// interactive session cannot trip provider quotas. Sits outermost in the
// middleware chain so waiting does not count against retry backoff.
type RateLimitProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps a Provider with a client-side limiter.
// requestsPerMinute <= 0 disables the limiter.
func WithRateLimit(p Provider, requestsPerMinute int) Provider {
	if requestsPerMinute <= 0 {
		return p
	}
	rps := float64(requestsPerMinute) / 60.0
	burst := max(1, requestsPerMinute/5)
	return &RateLimitProvider{
		inner:   p,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Generate(ctx, req)
}

func (r *RateLimitProvider) ModelID() string {
	return r.inner.ModelID()
}
