package driven

import (
	"context"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

// WorkspaceStore persists the workspace aggregate as a single document.
// Every save is a whole-aggregate overwrite; there is no incremental
// persistence and no optimistic concurrency check. Absence of the stored
// document is equivalent to an empty aggregate, not an error.
type WorkspaceStore interface {
	// Load reads the persisted aggregate. A missing document yields an
	// empty workspace and no error; read or parse failures return an
	// error the caller is expected to absorb into an empty aggregate.
	Load(ctx context.Context) (*domain.Workspace, error)

	// Save overwrites the persisted aggregate with the given state.
	Save(ctx context.Context, w *domain.Workspace) error

	// Close releases resources.
	Close() error
}
