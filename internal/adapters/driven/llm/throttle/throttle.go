// Package throttle wraps a generator with client-side rate limiting.
package throttle

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// DefaultRate is the proactive throttle rate in requests per second.
// Cloud providers tolerate far more, but claim workflows are bursty and
// interactive; half a request per second keeps a chat loop under every
// provider's free-tier ceiling.
const DefaultRate = 0.5

// Generator decorates another generator with a token bucket. Every
// completion waits for a token first, so concurrent callers are spaced
// out instead of tripping provider 429 responses.
type Generator struct {
	inner  driven.Generator
	bucket *rate.Limiter
}

// New wraps a generator with proactive throttling at the given rate in
// requests per second. A non-positive rate falls back to DefaultRate.
func New(inner driven.Generator, perSecond float64) *Generator {
	if perSecond <= 0 {
		perSecond = DefaultRate
	}
	return &Generator{
		inner:  inner,
		bucket: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Complete waits for bucket capacity, then delegates.
func (g *Generator) Complete(ctx context.Context, systemPrompt, userPrompt string, opts driven.CompleteOptions) (string, error) {
	if err := g.bucket.Wait(ctx); err != nil {
		return "", fmt.Errorf("throttle wait: %w", err)
	}
	return g.inner.Complete(ctx, systemPrompt, userPrompt, opts)
}

// ModelName returns the wrapped generator's model name.
func (g *Generator) ModelName() string {
	return g.inner.ModelName()
}

// Ping delegates without consuming a token; it is a health check, not a
// completion.
func (g *Generator) Ping(ctx context.Context) error {
	return g.inner.Ping(ctx)
}

// Close releases the wrapped generator's resources.
func (g *Generator) Close() error {
	return g.inner.Close()
}
