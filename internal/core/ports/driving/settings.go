package driving

import "github.com/custodia-labs/claimmate-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetGenerator configures the generation provider.
	SetGenerator(provider domain.GenerationProvider, model, baseURL, apiKey string) error

	// SetStorage configures the workspace persistence backend.
	SetStorage(backend domain.StorageBackend, dataDir string) error

	// Validate checks if current settings are internally consistent.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
