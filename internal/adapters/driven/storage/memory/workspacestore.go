package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
)

// Ensure WorkspaceStore implements the interface.
var _ driven.WorkspaceStore = (*WorkspaceStore)(nil)

// WorkspaceStore is an in-memory implementation of
// driven.WorkspaceStore. The aggregate round-trips through JSON on save
// and load so callers get an independent copy, matching the isolation of
// the durable backends.
type WorkspaceStore struct {
	mu   sync.RWMutex
	data []byte

	// SaveErr, when set, is returned from every Save. Used by tests to
	// exercise persistence-failure paths.
	SaveErr error

	// LoadErr, when set, is returned from every Load.
	LoadErr error

	// Saves counts successful Save calls.
	Saves int
}

// NewWorkspaceStore creates a new in-memory workspace store.
func NewWorkspaceStore() *WorkspaceStore {
	return &WorkspaceStore{}
}

// Load returns the stored aggregate, or nil when nothing has been saved.
func (s *WorkspaceStore) Load(_ context.Context) (*domain.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.data == nil {
		return nil, nil
	}
	var w domain.Workspace
	if err := json.Unmarshal(s.data, &w); err != nil {
		return nil, fmt.Errorf("decode workspace: %w", err)
	}
	return &w, nil
}

// Save stores a snapshot of the aggregate.
func (s *WorkspaceStore) Save(_ context.Context, w *domain.Workspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode workspace: %w", err)
	}
	s.data = data
	s.Saves++
	return nil
}

// Close is a no-op for the in-memory store.
func (s *WorkspaceStore) Close() error {
	return nil
}
