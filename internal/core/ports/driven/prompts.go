package driven

// PromptStore provides access to system prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Returns the prompt content and any error encountered.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptMappingSystem fixes the JSON-array output contract for
	// symptom-to-condition mapping. No format placeholders.
	PromptMappingSystem = "mapping_system"

	// PromptMappingTableSystem is the legacy two-column table variant of
	// the mapping system prompt. No format placeholders.
	PromptMappingTableSystem = "mapping_table_system"

	// PromptSummarySystem instructs the model to summarise uploaded
	// records. No format placeholders.
	PromptSummarySystem = "summary_system"

	// PromptStatementSystem instructs the model to write a first-person
	// lay statement. No format placeholders.
	PromptStatementSystem = "statement_system"

	// PromptRewriteSystem instructs the model to tighten an existing
	// statement. No format placeholders.
	PromptRewriteSystem = "rewrite_system"

	// PromptChatSystem is the system prompt for the contextual claim
	// chat. No format placeholders.
	PromptChatSystem = "chat_system"
)

// PromptStoreAware is an optional interface for services that can use custom prompts.
// Services implementing this interface can have their prompt templates customised
// by injecting a PromptStore after construction.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service should use hardcoded default prompts.
	SetPromptStore(store PromptStore)
}
