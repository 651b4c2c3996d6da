package domain

const unknownDescription = "Unknown"

// GenerationProvider identifies a text-generation service provider.
type GenerationProvider string

// Available generation providers.
const (
	// ProviderOpenAI is the OpenAI cloud API.
	ProviderOpenAI GenerationProvider = "openai"

	// ProviderAnthropic is the Anthropic cloud API.
	ProviderAnthropic GenerationProvider = "anthropic"

	// ProviderOllama is a local Ollama instance.
	ProviderOllama GenerationProvider = "ollama"
)

// IsValid returns true if the provider is recognised.
func (p GenerationProvider) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p GenerationProvider) RequiresAPIKey() bool {
	return p == ProviderOpenAI || p == ProviderAnthropic
}

// String returns the string representation.
func (p GenerationProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p GenerationProvider) Description() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI (cloud)"
	case ProviderAnthropic:
		return "Anthropic (cloud)"
	case ProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// GeneratorSettings holds generation provider configuration.
type GeneratorSettings struct {
	// Provider is the generation service provider.
	Provider GenerationProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible gateways).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string
}

// IsConfigured returns true if the generation provider is set up.
func (g GeneratorSettings) IsConfigured() bool {
	if !g.Provider.IsValid() {
		return false
	}
	if g.Provider.RequiresAPIKey() && g.APIKey == "" {
		return false
	}
	return true
}

// StorageBackend identifies a workspace persistence backend.
type StorageBackend string

// Available storage backends.
const (
	// StorageFile persists the workspace as a single JSON document.
	StorageFile StorageBackend = "file"

	// StorageSQLite persists the workspace in a SQLite database.
	StorageSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageFile || b == StorageSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageFile:
		return "JSON file (single document)"
	case StorageSQLite:
		return "SQLite database"
	default:
		return unknownDescription
	}
}

// StorageSettings holds workspace persistence configuration.
type StorageSettings struct {
	// Backend selects the persistence adapter.
	Backend StorageBackend

	// DataDir is the directory holding workspace data.
	// Empty means the default (~/.claimmate/data).
	DataDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Generator holds generation provider settings.
	Generator GeneratorSettings

	// Storage holds workspace persistence settings.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The generator is left unconfigured; users set it up via the wizard.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		// Generator is left unconfigured - user must set up via settings wizard
		Generator: GeneratorSettings{},
		Storage: StorageSettings{
			Backend: StorageFile,
		},
	}
}

// AllGenerationProviders returns every supported provider.
func AllGenerationProviders() []GenerationProvider {
	return []GenerationProvider{
		ProviderOpenAI,
		ProviderAnthropic,
		ProviderOllama,
	}
}

// DefaultModels returns the default model for each provider.
func DefaultModels() map[GenerationProvider]string {
	return map[GenerationProvider]string{
		ProviderOpenAI:    "gpt-4o-mini",
		ProviderAnthropic: "claude-3-5-sonnet-latest",
		ProviderOllama:    "llama3.2",
	}
}

// AllStorageBackends returns every supported storage backend.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageFile, StorageSQLite}
}
