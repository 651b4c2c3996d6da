package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads system prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptMappingSystem: `You support veterans building VA disability claims. Return JSON only. Format: [{"condition":"","icd10":"","body_system":"","va_rating_hint":"","rationale":""}] Do not add commentary outside JSON.`,

	driven.PromptMappingTableSystem: `You map symptoms to VA-claimable conditions and ICD-10 codes.`,

	driven.PromptSummarySystem: `You summarize medical records for VA disability claims. Write a structured summary covering diagnoses, key findings, functional limitations, and any references to service or exposures.`,

	driven.PromptStatementSystem: `You write VA lay statements and personal impact statements for disability claims. Use first person from the veteran. Tone: plain language, honest, detailed, no legal jargon. Target length: 600 to 900 words. Cover onset, progression, daily impact, work impact, safety concerns, sleep, mental health, flare patterns, and connection to service. Reference medical and symptom context when helpful, without quoting records line by line.`,

	driven.PromptRewriteSystem: `You edit VA personal statements. Keep the first-person voice and every factual detail. Tighten wording, improve flow, and keep plain language. Return only the revised statement.`,

	driven.PromptChatSystem: `You are a VA claims helper. Provide education on VA concepts, rating criteria, and preparation steps. Do not give legal advice and do not promise outcomes. Use the provided context when relevant, but you are not a substitute for a VSO, attorney, or accredited representative.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.claimmate/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".claimmate", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# ClaimMate Prompts

This directory contains customisable system prompts used by ClaimMate's AI features.

## Files

- ` + "`mapping_system.txt`" + ` - Maps symptom narratives to conditions (JSON output)
- ` + "`mapping_table_system.txt`" + ` - Legacy two-column mapping variant
- ` + "`summary_system.txt`" + ` - Summarises uploaded medical records
- ` + "`statement_system.txt`" + ` - Drafts first-person lay statements
- ` + "`rewrite_system.txt`" + ` - Tightens saved statements
- ` + "`chat_system.txt`" + ` - System prompt for the claim chat

## Customisation

Edit any file to customise AI behaviour. Changes take effect on the next
command, or immediately when running the chat with prompt watching enabled.

Keep the mapping prompt's JSON output contract intact: the application
expects a JSON array of condition objects and falls back to showing raw
text when the contract is broken.
`
	return os.WriteFile(path, []byte(content), 0600)
}
