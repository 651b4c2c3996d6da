// Package file provides a JSON file-based implementation of the workspace store.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
)

// Ensure WorkspaceStore implements the interface.
var _ driven.WorkspaceStore = (*WorkspaceStore)(nil)

// workspaceFile is the file name within the data directory.
const workspaceFile = "workspace.json"

// WorkspaceStore persists the workspace aggregate as one JSON document.
// Saves write to a temporary file first and rename into place, so a
// crash mid-write never leaves a torn document behind.
type WorkspaceStore struct {
	mu   sync.Mutex
	path string
}

// NewWorkspaceStore creates a new file-based workspace store.
// If dataDir is empty, defaults to ~/.claimmate/data/workspace.json.
func NewWorkspaceStore(dataDir string) (*WorkspaceStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".claimmate", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &WorkspaceStore{
		path: filepath.Join(dataDir, workspaceFile),
	}, nil
}

// Load reads the workspace aggregate. A missing file is a fresh start,
// returned as nil with no error.
func (s *WorkspaceStore) Load(_ context.Context) (*domain.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading workspace file: %w", err)
	}

	var w domain.Workspace
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding workspace file: %w", err)
	}
	return &w, nil
}

// Save writes the workspace aggregate, replacing any previous snapshot.
func (s *WorkspaceStore) Save(_ context.Context, w *domain.Workspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding workspace: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing workspace file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing workspace file: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *WorkspaceStore) Close() error {
	return nil
}

// Path returns the workspace file path.
func (s *WorkspaceStore) Path() string {
	return s.path
}
