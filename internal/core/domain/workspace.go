package domain

import (
	"fmt"
	"time"
)

// Workspace is the single persisted aggregate for one claim case.
// It owns all user-entered and model-generated state: profile, issues,
// uploaded documents, symptom mappings, saved statements, and free-text
// scratch fields. One workspace is loaded per session, mutated in place,
// and written back whole after every user-visible action.
type Workspace struct {
	// Profile holds the veteran's service background.
	Profile Profile `json:"profile"`

	// Issues is the claimed-issue list, regenerated wholesale from
	// line-delimited input. Order follows input order; duplicates allowed.
	Issues []Issue `json:"issues"`

	// Documents are uploaded evidence files with extracted text.
	// Never auto-deleted; uploads sharing an ID are skipped.
	Documents []Document `json:"documents"`

	// SymptomMappings is the latest model-proposed condition list.
	// Replaced wholesale on each successful mapping call.
	SymptomMappings []SymptomMapping `json:"symptom_mappings"`

	// EvidenceSummary is the combined record summary, model-generated
	// or user-edited. Last write wins.
	EvidenceSummary string `json:"evidence_summary"`

	// Claims are saved personal statements, append-only via explicit
	// save and removable individually by ID.
	Claims []Claim `json:"claims"`

	// SymptomNote is the raw symptom narrative. Last write wins.
	SymptomNote string `json:"symptom_note"`

	// Notes is a free-text scratch field. Last write wins.
	Notes string `json:"notes"`
}

// Profile holds the veteran's service background.
// All fields are optional; empty fields are omitted from prompts and exports.
type Profile struct {
	FullName            string `json:"full_name"`
	Branch              string `json:"branch"`
	ServiceDates        string `json:"service_dates"`
	DeploymentLocations string `json:"deployment_locations"`
	MOSDuties           string `json:"mos_duties"`
	OtherNotes          string `json:"other_notes"`
}

// IsEmpty returns true if no profile field is set.
func (p Profile) IsEmpty() bool {
	return p == Profile{}
}

// Issue is a single claimed issue.
type Issue struct {
	// Label is the issue name, one per input line.
	Label string `json:"label"`

	// Details is optional trailing detail shown in exports.
	Details string `json:"details"`
}

// Document is an uploaded evidence file after text extraction.
type Document struct {
	// ID is the deterministic key derived from name and size.
	ID string `json:"id"`

	// Name is the original file name.
	Name string `json:"name"`

	// MediaType is the declared media type; no content sniffing is done.
	MediaType string `json:"media_type"`

	// Size is the upload size in bytes.
	Size int64 `json:"size"`

	// UploadedAt is when the document was added.
	UploadedAt time.Time `json:"uploaded_at"`

	// Text is the extracted plain text, empty when extraction failed.
	Text string `json:"text"`

	// Notes is user commentary, mutable after upload.
	Notes string `json:"notes"`
}

// DocumentID derives the deterministic document key from name and size.
// Two uploads sharing a key are treated as duplicates even when their
// content differs.
func DocumentID(name string, size int64) string {
	return fmt.Sprintf("%s:%d", name, size)
}

// SymptomMapping is one model-proposed condition record.
type SymptomMapping struct {
	Condition    string `json:"condition"`
	ICD10        string `json:"icd10"`
	BodySystem   string `json:"body_system"`
	VARatingHint string `json:"va_rating_hint"`
	Rationale    string `json:"rationale"`

	// SelectedForClaim marks conditions the user linked to the claim.
	// Re-derived from the user's selection set after each regeneration.
	SelectedForClaim bool `json:"selected_for_claim"`
}

// Claim is a saved personal statement.
type Claim struct {
	// ID is unique within the sequence. Generated from sequence length
	// plus a timestamp, so rapid successive saves can collide; see NewClaimID.
	ID string `json:"id"`

	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClaimID generates a claim ID from the current sequence length and a
// Unix timestamp. The scheme is not collision-proof under saves within
// the same second; callers accept that window.
func NewClaimID(sequenceLen int, now time.Time) string {
	return fmt.Sprintf("claim_%d_%d", sequenceLen+1, now.Unix())
}

// MergeDefaults back-fills absent collections so downstream code never
// observes a nil sequence. It fills only what is missing, never
// overwrites present values, and is idempotent.
func MergeDefaults(w *Workspace) {
	if w.Issues == nil {
		w.Issues = []Issue{}
	}
	if w.Documents == nil {
		w.Documents = []Document{}
	}
	if w.SymptomMappings == nil {
		w.SymptomMappings = []SymptomMapping{}
	}
	if w.Claims == nil {
		w.Claims = []Claim{}
	}
}

// NewWorkspace returns an empty aggregate with defaults applied.
func NewWorkspace() *Workspace {
	w := &Workspace{}
	MergeDefaults(w)
	return w
}

// HasDocument reports whether a document with the given ID already exists.
func (w *Workspace) HasDocument(id string) bool {
	for _, d := range w.Documents {
		if d.ID == id {
			return true
		}
	}
	return false
}

// FindDocument returns the document with the given ID, or nil.
func (w *Workspace) FindDocument(id string) *Document {
	for i := range w.Documents {
		if w.Documents[i].ID == id {
			return &w.Documents[i]
		}
	}
	return nil
}

// FindClaim returns the claim with the given ID, or nil.
func (w *Workspace) FindClaim(id string) *Claim {
	for i := range w.Claims {
		if w.Claims[i].ID == id {
			return &w.Claims[i]
		}
	}
	return nil
}

// ApplySelection sets SelectedForClaim on each mapping whose condition
// appears in the selection set, and clears it on all others.
func (w *Workspace) ApplySelection(conditions []string) {
	selected := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		selected[c] = true
	}
	for i := range w.SymptomMappings {
		w.SymptomMappings[i].SelectedForClaim = selected[w.SymptomMappings[i].Condition]
	}
}

// SelectedConditions returns the condition names currently marked
// selected, in list order.
func (w *Workspace) SelectedConditions() []string {
	var names []string
	for _, m := range w.SymptomMappings {
		if m.SelectedForClaim && m.Condition != "" {
			names = append(names, m.Condition)
		}
	}
	return names
}

// ReplaceMappings swaps in a freshly parsed mapping list. Replacement
// clears the selection: every new mapping starts unselected, and the
// user re-selects against the new list.
func (w *Workspace) ReplaceMappings(mappings []SymptomMapping) {
	for i := range mappings {
		mappings[i].SelectedForClaim = false
	}
	w.SymptomMappings = mappings
}
