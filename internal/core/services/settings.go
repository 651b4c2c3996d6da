package services

import (
	"fmt"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGenProvider = "generator.provider"
	keyGenModel    = "generator.model"
	keyGenBaseURL  = "generator.base_url"
	keyGenAPIKey   = "generator.api_key"
	keyStoreBack   = "storage.backend"
	keyStoreDir    = "storage.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Generator: domain.GeneratorSettings{
			Provider: domain.GenerationProvider(s.configStore.GetString(keyGenProvider)),
			Model:    s.configStore.GetString(keyGenModel),
			BaseURL:  s.configStore.GetString(keyGenBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyGenAPIKey),
		},
		Storage: domain.StorageSettings{
			Backend: domain.StorageBackend(s.getString(keyStoreBack, defaults.Storage.Backend.String())),
			DataDir: s.configStore.GetString(keyStoreDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyGenProvider, settings.Generator.Provider.String()); err != nil {
		return fmt.Errorf("save generator provider: %w", err)
	}
	if err := s.configStore.Set(keyGenModel, settings.Generator.Model); err != nil {
		return fmt.Errorf("save generator model: %w", err)
	}
	if err := s.configStore.Set(keyGenBaseURL, settings.Generator.BaseURL); err != nil {
		return fmt.Errorf("save generator base_url: %w", err)
	}
	if settings.Generator.APIKey != "" {
		if err := s.configStore.Set(keyGenAPIKey, settings.Generator.APIKey); err != nil {
			return fmt.Errorf("save generator api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyStoreBack, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStoreDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}

	return nil
}

// SetGenerator configures the generation provider.
func (s *SettingsService) SetGenerator(provider domain.GenerationProvider, model, baseURL, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid generation provider: %s", provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		// Keep a previously stored key when none is supplied.
		existing, err := s.Get()
		if err == nil && existing.Generator.Provider == provider {
			apiKey = existing.Generator.APIKey
		}
		if apiKey == "" {
			return fmt.Errorf("provider %s requires an API key", provider)
		}
	}
	if model == "" {
		model = domain.DefaultModels()[provider]
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Generator = domain.GeneratorSettings{
		Provider: provider,
		Model:    model,
		BaseURL:  baseURL,
		APIKey:   apiKey,
	}
	return s.Save(settings)
}

// SetStorage configures the workspace persistence backend.
func (s *SettingsService) SetStorage(backend domain.StorageBackend, dataDir string) error {
	if !backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage = domain.StorageSettings{
		Backend: backend,
		DataDir: dataDir,
	}
	return s.Save(settings)
}

// Validate checks if current settings are internally consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	gen := settings.Generator
	if gen.Provider != "" {
		if !gen.Provider.IsValid() {
			return fmt.Errorf("unknown generation provider: %s", gen.Provider)
		}
		if gen.Provider.RequiresAPIKey() && gen.APIKey == "" {
			return fmt.Errorf("provider %s requires an API key", gen.Provider)
		}
	}

	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("unknown storage backend: %s", settings.Storage.Backend)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getString returns a config value or the default when unset.
func (s *SettingsService) getString(key, defaultValue string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultValue
}
