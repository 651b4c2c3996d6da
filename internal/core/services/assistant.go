package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driving"
	"github.com/custodia-labs/claimmate-cli/internal/logger"
)

// Ensure AssistantService implements the interfaces.
var (
	_ driving.AssistantService = (*AssistantService)(nil)
	_ driven.PromptStoreAware  = (*AssistantService)(nil)
)

// Generation temperatures per feature. Mapping runs coldest because the
// output must parse; drafting runs warmest because the output is prose.
const (
	mappingTemperature   = 0.2
	tableTemperature     = 0.3
	summaryTemperature   = 0.25
	statementTemperature = 0.35
	rewriteTemperature   = 0.3
	chatTemperature      = 0.35

	// tableMaxTokens caps the legacy table completion. The table variant
	// predates the JSON contract and only ever needs a handful of rows.
	tableMaxTokens = 400
)

// AssistantService implements every AI-assisted workflow: prompt
// assembly from the workspace, a gateway call, defensive parsing, and
// any resulting workspace mutation. The generator may be nil when no
// provider is configured; every operation then fails fast with
// ErrGeneratorUnavailable instead of touching the workspace.
type AssistantService struct {
	workspace *WorkspaceService
	generator driven.Generator

	// promptStore provides customised system prompts. Optional; when nil
	// or when a named prompt is missing, built-in defaults apply.
	promptStore driven.PromptStore
}

// NewAssistantService creates a new assistant service. The generator may
// be nil; AI operations will report ErrGeneratorUnavailable until one is
// configured.
func NewAssistantService(workspace *WorkspaceService, generator driven.Generator) *AssistantService {
	return &AssistantService{
		workspace: workspace,
		generator: generator,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (s *AssistantService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// systemPrompt resolves a named system prompt from the store, falling
// back to the built-in default on any miss or error.
func (s *AssistantService) systemPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		if err != nil {
			logger.Debug("prompt %s unavailable, using default: %v", name, err)
		}
		return fallback
	}
	return prompt
}

// complete runs one gateway call and wraps failures in the domain error.
func (s *AssistantService) complete(ctx context.Context, p PromptPair, opts driven.CompleteOptions) (string, error) {
	if s.generator == nil {
		return "", domain.ErrGeneratorUnavailable
	}
	out, err := s.generator.Complete(ctx, p.System, p.User, opts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}
	return out, nil
}

// MapSymptoms stores the narrative as the symptom note, asks the model
// for condition records, and on a successful parse replaces the mapping
// list. Replacement clears any prior selection; the user re-selects
// against the new list. A parse fallback leaves the stored mappings
// untouched; the caller gets the raw text to show instead.
func (s *AssistantService) MapSymptoms(ctx context.Context, narrative string) (*domain.MappingResult, error) {
	narrative = strings.TrimSpace(narrative)
	if narrative == "" {
		return nil, fmt.Errorf("symptom narrative is empty: %w", domain.ErrInvalidInput)
	}
	if s.generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	w, err := s.workspace.Get(ctx)
	if err != nil {
		return nil, err
	}
	w.SymptomNote = narrative
	if err := s.workspace.persist(ctx); err != nil {
		return nil, err
	}

	prompt := BuildMappingPrompt(s.systemPrompt(driven.PromptMappingSystem, defaultMappingSystemPrompt), narrative)
	raw, err := s.complete(ctx, prompt, driven.CompleteOptions{Temperature: mappingTemperature})
	if err != nil {
		return nil, err
	}

	result := ParseMappingCompletion(raw)
	if result.Parsed && len(result.Mappings) > 0 {
		w.ReplaceMappings(result.Mappings)
		if err := s.workspace.persist(ctx); err != nil {
			return result, err
		}
	} else if !result.Parsed {
		logger.Warn("mapping completion did not parse as a JSON array, keeping existing mappings")
	}
	return result, nil
}

// MapSymptomsTable is the legacy two-column variant. The parsed rows and
// the raw table text both come back; nothing is persisted beyond the
// symptom note.
func (s *AssistantService) MapSymptomsTable(ctx context.Context, narrative string) ([]domain.ConditionCode, string, error) {
	narrative = strings.TrimSpace(narrative)
	if narrative == "" {
		return nil, "", fmt.Errorf("symptom narrative is empty: %w", domain.ErrInvalidInput)
	}
	if s.generator == nil {
		return nil, "", domain.ErrGeneratorUnavailable
	}

	w, err := s.workspace.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	w.SymptomNote = narrative
	if err := s.workspace.persist(ctx); err != nil {
		return nil, "", err
	}

	prompt := BuildMappingTablePrompt(s.systemPrompt(driven.PromptMappingTableSystem, defaultMappingTableSystemPrompt), narrative)
	raw, err := s.complete(ctx, prompt, driven.CompleteOptions{
		Temperature: tableTemperature,
		MaxTokens:   tableMaxTokens,
	})
	if err != nil {
		return nil, "", err
	}
	return ParseConditionTable(raw), raw, nil
}

// SummariseEvidence concatenates every document with text into the
// bounded evidence blob, asks the model for a structured summary, and
// stores the result as the evidence summary.
func (s *AssistantService) SummariseEvidence(ctx context.Context) (string, error) {
	if s.generator == nil {
		return "", domain.ErrGeneratorUnavailable
	}

	w, err := s.workspace.Get(ctx)
	if err != nil {
		return "", err
	}
	blob := BuildEvidenceBlob(w.Documents)
	if blob == "" {
		return "", fmt.Errorf("no document text to summarise: %w", domain.ErrInvalidInput)
	}

	prompt := BuildSummaryPrompt(s.systemPrompt(driven.PromptSummarySystem, defaultSummarySystemPrompt), blob)
	raw, err := s.complete(ctx, prompt, driven.CompleteOptions{Temperature: summaryTemperature})
	if err != nil {
		return "", err
	}

	summary := ParseProseCompletion(raw)
	w.EvidenceSummary = summary
	if err := s.workspace.persist(ctx); err != nil {
		return summary, err
	}
	return summary, nil
}

// DraftStatement writes a personal statement for the given claim focus.
// An empty focus set includes every stored mapping. The draft is
// returned, not persisted.
func (s *AssistantService) DraftStatement(ctx context.Context, title string, focusConditions []string) (string, error) {
	if s.generator == nil {
		return "", domain.ErrGeneratorUnavailable
	}
	if title == "" {
		title = "VA disability claim"
	}

	w, err := s.workspace.Get(ctx)
	if err != nil {
		return "", err
	}

	prompt := BuildStatementPrompt(s.systemPrompt(driven.PromptStatementSystem, defaultStatementSystemPrompt), w, title, focusConditions)
	raw, err := s.complete(ctx, prompt, driven.CompleteOptions{Temperature: statementTemperature})
	if err != nil {
		return "", err
	}
	return ParseProseCompletion(raw), nil
}

// RewriteStatement asks the model to tighten a saved statement and
// returns the revision without persisting it. Saving the revision is an
// explicit follow-up.
func (s *AssistantService) RewriteStatement(ctx context.Context, claimID string) (string, error) {
	if s.generator == nil {
		return "", domain.ErrGeneratorUnavailable
	}

	w, err := s.workspace.Get(ctx)
	if err != nil {
		return "", err
	}
	claim := w.FindClaim(claimID)
	if claim == nil {
		return "", fmt.Errorf("claim %s: %w", claimID, domain.ErrNotFound)
	}

	prompt := BuildRewritePrompt(s.systemPrompt(driven.PromptRewriteSystem, defaultRewriteSystemPrompt), claim.Body)
	raw, err := s.complete(ctx, prompt, driven.CompleteOptions{Temperature: rewriteTemperature})
	if err != nil {
		return "", err
	}
	return ParseProseCompletion(raw), nil
}

// Chat answers a question with workspace context and the session
// conversation so far. History is caller-owned and never persisted.
func (s *AssistantService) Chat(ctx context.Context, history []domain.ChatTurn, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty: %w", domain.ErrInvalidInput)
	}
	if s.generator == nil {
		return "", domain.ErrGeneratorUnavailable
	}

	w, err := s.workspace.Get(ctx)
	if err != nil {
		return "", err
	}

	prompt := BuildChatPrompt(s.systemPrompt(driven.PromptChatSystem, defaultChatSystemPrompt), w, history, question)
	raw, err := s.complete(ctx, prompt, driven.CompleteOptions{Temperature: chatTemperature})
	if err != nil {
		return "", err
	}
	return ParseProseCompletion(raw), nil
}
