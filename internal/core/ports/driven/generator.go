package driven

import "context"

// Generator is the text-generation gateway: a prompt pair in, a
// completion out. It is an opaque external collaborator - the core never
// inspects provider behaviour beyond this contract, and every call may
// fail (network, auth, rate limit).
//
// Implementations may include:
//   - OpenAI (GPT-4o family)
//   - Anthropic (Claude)
//   - Ollama (local models)
type Generator interface {
	// Complete produces a completion for a system/user prompt pair.
	// The call blocks until the provider responds or fails; there is no
	// timeout beyond the underlying client's own.
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompleteOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to AI features.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompleteOptions configures completion behaviour.
type CompleteOptions struct {
	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// MaxTokens is the maximum number of tokens to generate.
	// Zero means the provider default.
	MaxTokens int
}
