package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driving"
	"github.com/custodia-labs/claimmate-cli/internal/logger"
)

// Ensure WorkspaceService implements the interface.
var _ driving.WorkspaceService = (*WorkspaceService)(nil)

// WorkspaceService manages the session's workspace aggregate: loaded
// once on first use, mutated in place, and written back whole after
// every mutation. There is no transaction boundary - each save is a
// full-aggregate overwrite, and concurrent sessions against the same
// storage race with last-save-wins semantics.
type WorkspaceService struct {
	store      driven.WorkspaceStore
	extractors driven.ExtractorRegistry

	// now is the clock, swappable in tests.
	now func() time.Time

	// current is the session aggregate, nil until first load.
	current *domain.Workspace
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(store driven.WorkspaceStore, extractors driven.ExtractorRegistry) *WorkspaceService {
	return &WorkspaceService{
		store:      store,
		extractors: extractors,
		now:        time.Now,
	}
}

// Get returns the session aggregate, loading it on first use. A read or
// parse failure degrades to an empty aggregate with a warning rather
// than propagating; defaults are back-filled either way so no caller
// ever observes a missing collection.
func (s *WorkspaceService) Get(ctx context.Context) (*domain.Workspace, error) {
	if s.current != nil {
		return s.current, nil
	}
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	w, err := s.store.Load(ctx)
	if err != nil || w == nil {
		if err != nil {
			logger.Warn("workspace load failed, starting empty: %v", err)
		}
		w = domain.NewWorkspace()
	}
	domain.MergeDefaults(w)
	s.current = w
	return s.current, nil
}

// persist writes the aggregate back to durable storage. A write failure
// is surfaced to the caller wrapped in ErrPersistence but never rolls
// back the in-memory session.
func (s *WorkspaceService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.current); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// SetProfile overwrites the veteran profile.
func (s *WorkspaceService) SetProfile(ctx context.Context, profile domain.Profile) error {
	w, err := s.Get(ctx)
	if err != nil {
		return err
	}
	w.Profile = profile
	return s.persist(ctx)
}

// SetIssues regenerates the claimed-issue list from line-delimited text.
// The list is rebuilt wholesale, not patched: order follows input order
// and duplicate lines stay duplicates. Blank lines are dropped.
func (s *WorkspaceService) SetIssues(ctx context.Context, text string) error {
	w, err := s.Get(ctx)
	if err != nil {
		return err
	}

	issues := []domain.Issue{}
	for _, line := range strings.Split(text, "\n") {
		if label := strings.TrimSpace(line); label != "" {
			issues = append(issues, domain.Issue{Label: label})
		}
	}
	w.Issues = issues
	return s.persist(ctx)
}

// AddDocument extracts text from an upload and appends the document.
// The ID derives from name and size; an upload whose ID already exists
// is skipped even when its content differs, reported via the returned
// flag. Extraction failures become a document with empty text.
func (s *WorkspaceService) AddDocument(ctx context.Context, upload driving.Upload) (*domain.Document, bool, error) {
	if upload.Name == "" {
		return nil, false, fmt.Errorf("upload needs a file name: %w", domain.ErrInvalidInput)
	}

	w, err := s.Get(ctx)
	if err != nil {
		return nil, false, err
	}

	id := domain.DocumentID(upload.Name, int64(len(upload.Content)))
	if w.HasDocument(id) {
		logger.Debug("skipping duplicate upload %s", id)
		return w.FindDocument(id), true, nil
	}

	uploadedAt := upload.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = s.now()
	}

	doc := domain.Document{
		ID:         id,
		Name:       upload.Name,
		MediaType:  upload.MediaType,
		Size:       int64(len(upload.Content)),
		UploadedAt: uploadedAt.UTC(),
		Text:       s.extractors.Extract(ctx, upload.Content, upload.MediaType, upload.Name),
	}
	w.Documents = append(w.Documents, doc)

	if err := s.persist(ctx); err != nil {
		return &w.Documents[len(w.Documents)-1], false, err
	}
	return &w.Documents[len(w.Documents)-1], false, nil
}

// SetDocumentNote updates the notes on an uploaded document.
func (s *WorkspaceService) SetDocumentNote(ctx context.Context, documentID, notes string) error {
	w, err := s.Get(ctx)
	if err != nil {
		return err
	}
	doc := w.FindDocument(documentID)
	if doc == nil {
		return fmt.Errorf("document %s: %w", documentID, domain.ErrNotFound)
	}
	doc.Notes = notes
	return s.persist(ctx)
}

// SetEvidenceSummary overwrites the evidence summary (user edit).
func (s *WorkspaceService) SetEvidenceSummary(ctx context.Context, summary string) error {
	w, err := s.Get(ctx)
	if err != nil {
		return err
	}
	w.EvidenceSummary = summary
	return s.persist(ctx)
}

// SetNotes overwrites the free-text scratch field.
func (s *WorkspaceService) SetNotes(ctx context.Context, notes string) error {
	w, err := s.Get(ctx)
	if err != nil {
		return err
	}
	w.Notes = notes
	return s.persist(ctx)
}

// SelectConditions re-derives the selected flag on every symptom
// mapping from the given condition-name set.
func (s *WorkspaceService) SelectConditions(ctx context.Context, conditions []string) error {
	w, err := s.Get(ctx)
	if err != nil {
		return err
	}
	w.ApplySelection(conditions)
	return s.persist(ctx)
}

// SaveClaim appends a personal statement to the claims list. The ID
// scheme (sequence length + timestamp) can collide under saves within
// the same second; that window is accepted, not mitigated.
func (s *WorkspaceService) SaveClaim(ctx context.Context, title, body string) (*domain.Claim, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("statement body is empty: %w", domain.ErrInvalidInput)
	}

	w, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = "VA claim statement"
	}
	now := s.now()
	claim := domain.Claim{
		ID:        domain.NewClaimID(len(w.Claims), now),
		Title:     title,
		Body:      body,
		CreatedAt: now.UTC(),
	}
	w.Claims = append(w.Claims, claim)

	if err := s.persist(ctx); err != nil {
		return &w.Claims[len(w.Claims)-1], err
	}
	return &w.Claims[len(w.Claims)-1], nil
}

// RemoveClaim deletes a saved statement by ID.
func (s *WorkspaceService) RemoveClaim(ctx context.Context, claimID string) error {
	w, err := s.Get(ctx)
	if err != nil {
		return err
	}

	kept := w.Claims[:0]
	found := false
	for _, c := range w.Claims {
		if c.ID == claimID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("claim %s: %w", claimID, domain.ErrNotFound)
	}
	w.Claims = kept
	return s.persist(ctx)
}

// ExportPacket renders the whole aggregate into the flat-text packet.
func (s *WorkspaceService) ExportPacket(ctx context.Context) (string, error) {
	w, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	return RenderPacket(w, s.now()), nil
}
