// Package ai provides factory functions for creating generation adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	anthropicllm "github.com/custodia-labs/claimmate-cli/internal/adapters/driven/llm/anthropic"
	ollamallm "github.com/custodia-labs/claimmate-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/claimmate-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/claimmate-cli/internal/adapters/driven/llm/throttle"
	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateGenerator creates the appropriate generator based on settings.
// Returns nil if the provider is not configured. The generator is
// wrapped with client-side throttling so interactive loops cannot trip
// provider rate limits.
func CreateGenerator(settings *domain.GeneratorSettings) (driven.Generator, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	var (
		gen driven.Generator
		err error
	)
	switch settings.Provider {
	case domain.ProviderOllama:
		gen = ollamallm.NewGenerator(ollamallm.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.ProviderOpenAI:
		gen, err = openaillm.NewGenerator(openaillm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.ProviderAnthropic:
		gen, err = anthropicllm.NewGenerator(anthropicllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", settings.Provider)
	}
	if err != nil {
		return nil, err
	}

	return throttle.New(gen, 0), nil
}

// CreateAndValidateGenerator creates a generator and validates connectivity.
// Returns the generator if successful, or an error with guidance.
func CreateAndValidateGenerator(settings *domain.GeneratorSettings) (driven.Generator, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	gen, err := CreateGenerator(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'claimmate settings wizard' to fix",
			domain.ErrGeneratorUnavailable, err)
	}
	if gen == nil {
		return nil, nil
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := gen.Ping(ctx); err != nil {
		gen.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'claimmate settings wizard' to fix",
			domain.ErrGeneratorUnavailable, err)
	}

	return gen, nil
}

// ValidateGeneratorConfig validates a generation configuration by creating
// a generator and pinging it. This is intended for use in the settings
// wizard to validate credentials on configuration.
func ValidateGeneratorConfig(settings *domain.GeneratorSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	gen, err := CreateGenerator(settings)
	if err != nil {
		return err
	}
	if gen == nil {
		return nil
	}
	defer gen.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return gen.Ping(ctx)
}
