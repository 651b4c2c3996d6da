package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/claimmate-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockExtractors implements driven.ExtractorRegistry for testing.
type mockExtractors struct {
	text string
}

func (m *mockExtractors) Extract(_ context.Context, _ []byte, _ string, _ string) string {
	return m.text
}

func newTestWorkspaceService(store *memory.WorkspaceStore) *WorkspaceService {
	svc := NewWorkspaceService(store, &mockExtractors{text: "extracted text"})
	svc.now = func() time.Time { return time.Unix(1700000000, 0).UTC() }
	return svc
}

// --- Tests ---

func TestWorkspaceService_GetStartsEmpty(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())

	w, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.NotNil(t, w.Issues)
	assert.NotNil(t, w.Documents)
	assert.NotNil(t, w.SymptomMappings)
	assert.NotNil(t, w.Claims)
}

func TestWorkspaceService_GetAbsorbsLoadFailure(t *testing.T) {
	store := memory.NewWorkspaceStore()
	store.LoadErr = errors.New("disk on fire")
	svc := newTestWorkspaceService(store)

	w, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Empty(t, w.Documents)
}

func TestWorkspaceService_GetCachesAggregate(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())

	w1, err := svc.Get(context.Background())
	require.NoError(t, err)
	w2, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, w1, w2)
}

// ctxRecordingStore captures the context handed to Load.
type ctxRecordingStore struct {
	loadCtx context.Context
}

func (s *ctxRecordingStore) Load(ctx context.Context) (*domain.Workspace, error) {
	s.loadCtx = ctx
	return nil, nil
}

func (s *ctxRecordingStore) Save(context.Context, *domain.Workspace) error { return nil }

func (s *ctxRecordingStore) Close() error { return nil }

func TestWorkspaceService_GetThreadsContextToStore(t *testing.T) {
	store := &ctxRecordingStore{}
	svc := NewWorkspaceService(store, &mockExtractors{})

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "session")

	_, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, store.loadCtx)
	assert.Equal(t, "session", store.loadCtx.Value(ctxKey{}))
}

func TestWorkspaceService_SetProfilePersists(t *testing.T) {
	store := memory.NewWorkspaceStore()
	svc := newTestWorkspaceService(store)

	err := svc.SetProfile(context.Background(), domain.Profile{FullName: "Jordan Reyes", Branch: "Army"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Saves)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", saved.Profile.FullName)
}

func TestWorkspaceService_SetIssuesRebuildsList(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())
	ctx := context.Background()

	require.NoError(t, svc.SetIssues(ctx, "Tinnitus\n\n  Back pain  \nTinnitus"))

	w, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, w.Issues, 3)
	assert.Equal(t, "Tinnitus", w.Issues[0].Label)
	assert.Equal(t, "Back pain", w.Issues[1].Label)
	assert.Equal(t, "Tinnitus", w.Issues[2].Label)

	// Wholesale replacement, not a merge.
	require.NoError(t, svc.SetIssues(ctx, "Knee pain"))
	w, _ = svc.Get(ctx)
	require.Len(t, w.Issues, 1)
	assert.Equal(t, "Knee pain", w.Issues[0].Label)
}

func TestWorkspaceService_AddDocumentExtractsAndPersists(t *testing.T) {
	store := memory.NewWorkspaceStore()
	svc := newTestWorkspaceService(store)

	doc, dup, err := svc.AddDocument(context.Background(), driving.Upload{
		Name:      "records.pdf",
		MediaType: "application/pdf",
		Content:   []byte("12345"),
	})
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, "records.pdf:5", doc.ID)
	assert.Equal(t, int64(5), doc.Size)
	assert.Equal(t, "extracted text", doc.Text)
	assert.False(t, doc.UploadedAt.IsZero())
	assert.Equal(t, 1, store.Saves)
}

func TestWorkspaceService_AddDocumentSkipsDuplicate(t *testing.T) {
	store := memory.NewWorkspaceStore()
	svc := newTestWorkspaceService(store)
	ctx := context.Background()

	upload := driving.Upload{Name: "records.pdf", Content: []byte("12345")}
	_, _, err := svc.AddDocument(ctx, upload)
	require.NoError(t, err)

	// Same name and size, different bytes. Still a duplicate by ID.
	upload.Content = []byte("54321")
	doc, dup, err := svc.AddDocument(ctx, upload)
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, "records.pdf:5", doc.ID)

	w, _ := svc.Get(ctx)
	assert.Len(t, w.Documents, 1)
	assert.Equal(t, 1, store.Saves)
}

func TestWorkspaceService_AddDocumentRequiresName(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())

	_, _, err := svc.AddDocument(context.Background(), driving.Upload{Content: []byte("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWorkspaceService_SetDocumentNote(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())
	ctx := context.Background()

	_, _, err := svc.AddDocument(ctx, driving.Upload{Name: "a.txt", Content: []byte("hi")})
	require.NoError(t, err)

	require.NoError(t, svc.SetDocumentNote(ctx, "a.txt:2", "buddy letter"))
	w, _ := svc.Get(ctx)
	assert.Equal(t, "buddy letter", w.Documents[0].Notes)

	err = svc.SetDocumentNote(ctx, "missing:0", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkspaceService_SelectConditions(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())
	ctx := context.Background()

	w, err := svc.Get(ctx)
	require.NoError(t, err)
	w.SymptomMappings = []domain.SymptomMapping{
		{Condition: "Tinnitus"},
		{Condition: "Migraine", SelectedForClaim: true},
	}

	require.NoError(t, svc.SelectConditions(ctx, []string{"Tinnitus"}))
	assert.True(t, w.SymptomMappings[0].SelectedForClaim)
	assert.False(t, w.SymptomMappings[1].SelectedForClaim)
}

func TestWorkspaceService_SaveClaimAssignsID(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())
	ctx := context.Background()

	claim, err := svc.SaveClaim(ctx, "", "I have experienced ringing in my ears since 2009.")
	require.NoError(t, err)
	assert.Equal(t, "claim_1_1700000000", claim.ID)
	assert.Equal(t, "VA claim statement", claim.Title)

	_, err = svc.SaveClaim(ctx, "Tinnitus", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWorkspaceService_RemoveClaim(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())
	ctx := context.Background()

	claim, err := svc.SaveClaim(ctx, "Tinnitus", "body")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveClaim(ctx, claim.ID))
	w, _ := svc.Get(ctx)
	assert.Empty(t, w.Claims)

	err = svc.RemoveClaim(ctx, claim.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkspaceService_PersistFailureWrapsError(t *testing.T) {
	store := memory.NewWorkspaceStore()
	store.SaveErr = errors.New("read-only filesystem")
	svc := newTestWorkspaceService(store)

	err := svc.SetNotes(context.Background(), "scratch")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// The in-memory session keeps the mutation.
	w, _ := svc.Get(context.Background())
	assert.Equal(t, "scratch", w.Notes)
}

func TestWorkspaceService_ExportPacket(t *testing.T) {
	svc := newTestWorkspaceService(memory.NewWorkspaceStore())
	ctx := context.Background()

	require.NoError(t, svc.SetEvidenceSummary(ctx, "Summary of records."))

	packet, err := svc.ExportPacket(ctx)
	require.NoError(t, err)
	assert.Contains(t, packet, "VA ClaimMate Claim Packet")
	assert.Contains(t, packet, "Summary of records.")
}
