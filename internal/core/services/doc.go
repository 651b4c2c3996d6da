// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Prompt assembly, completion parsing, and packet export are pure
// functions in this package; the workspace and assistant services wrap
// them with persistence and gateway calls.
package services
