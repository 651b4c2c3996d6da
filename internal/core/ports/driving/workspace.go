package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

// WorkspaceService manages the session's workspace aggregate.
// The aggregate is loaded once per session and written back after every
// mutation; a save failure is reported to the caller but never rolls
// back the in-memory state.
type WorkspaceService interface {
	// Get returns the session aggregate, loading it on first use.
	Get(ctx context.Context) (*domain.Workspace, error)

	// SetProfile overwrites the veteran profile.
	SetProfile(ctx context.Context, profile domain.Profile) error

	// SetIssues regenerates the claimed-issue list from line-delimited
	// text. Blank lines are dropped; order and duplicates are preserved.
	SetIssues(ctx context.Context, text string) error

	// AddDocument extracts text from an upload and appends it.
	// Uploads whose derived ID already exists are skipped and reported
	// via the returned flag.
	AddDocument(ctx context.Context, upload Upload) (*domain.Document, bool, error)

	// SetDocumentNote updates the notes on an uploaded document.
	SetDocumentNote(ctx context.Context, documentID, notes string) error

	// SetEvidenceSummary overwrites the evidence summary (user edit).
	SetEvidenceSummary(ctx context.Context, summary string) error

	// SetNotes overwrites the free-text scratch field.
	SetNotes(ctx context.Context, notes string) error

	// SelectConditions re-derives the selected flag on every symptom
	// mapping from the given condition-name set.
	SelectConditions(ctx context.Context, conditions []string) error

	// SaveClaim appends a personal statement to the claims list and
	// returns the stored record.
	SaveClaim(ctx context.Context, title, body string) (*domain.Claim, error)

	// RemoveClaim deletes a saved statement by ID.
	RemoveClaim(ctx context.Context, claimID string) error

	// ExportPacket renders the whole aggregate into the flat-text
	// claim packet.
	ExportPacket(ctx context.Context) (string, error)
}

// Upload is one file supplied by the upload interface: bytes plus the
// declared media type and file name. No content-based sniffing is done.
type Upload struct {
	// Name is the original file name.
	Name string

	// MediaType is the declared content type.
	MediaType string

	// Content is the raw bytes.
	Content []byte

	// UploadedAt is when the file was supplied. Zero means now.
	UploadedAt time.Time
}
