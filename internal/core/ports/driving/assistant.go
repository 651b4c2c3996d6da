package driving

import (
	"context"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

// AssistantService drives every AI-assisted feature. Each operation
// assembles a prompt pair from the workspace, calls the generation
// gateway, parses the completion defensively, and persists the resulting
// mutation. Gateway and parse failures degrade to empty results plus a
// surfaced notice; they never corrupt workspace state.
type AssistantService interface {
	// MapSymptoms stores the narrative as the symptom note, asks the
	// model for condition records, and on a successful structured parse
	// replaces the mapping list wholesale. Replacement clears the
	// selection; re-selecting is an explicit follow-up. The tagged
	// result lets callers show raw output when the parse fell back.
	MapSymptoms(ctx context.Context, narrative string) (*domain.MappingResult, error)

	// MapSymptomsTable is the legacy two-column variant: a markdown
	// table completion parsed lossily into condition/code pairs. It does
	// not touch the stored mapping list.
	MapSymptomsTable(ctx context.Context, narrative string) ([]domain.ConditionCode, string, error)

	// SummariseEvidence builds the combined-records prompt from every
	// uploaded document and stores the completion as the evidence
	// summary.
	SummariseEvidence(ctx context.Context) (string, error)

	// DraftStatement writes a personal statement for the given claim
	// focus. The draft is returned, not persisted; saving is an explicit
	// workspace operation.
	DraftStatement(ctx context.Context, title string, focusConditions []string) (string, error)

	// RewriteStatement asks the model to tighten a saved statement and
	// returns the new text without persisting it.
	RewriteStatement(ctx context.Context, claimID string) (string, error)

	// Chat answers a question using workspace context plus the
	// session-scoped conversation history. History is never persisted.
	Chat(ctx context.Context, history []domain.ChatTurn, question string) (string, error)
}
