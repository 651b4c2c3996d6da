// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable system prompt files with embedded defaults
//   - PromptWatcher: reloads prompts when files change on disk
package file
