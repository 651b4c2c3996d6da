// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - WorkspaceStore: Persists the workspace aggregate
//   - TextExtractor: Converts uploaded bytes into plain text
//   - ExtractorRegistry: Selects an extractor by media type
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Generator: Text-generation gateway. Without it, symptom mapping,
//     evidence summarisation, statement drafting, and chat are disabled;
//     the manual workspace operations keep working.
//   - PromptStore: User-customisable prompt templates. Without it,
//     embedded defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
