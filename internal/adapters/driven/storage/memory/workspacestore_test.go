package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

func TestWorkspaceStore_LoadEmpty(t *testing.T) {
	store := NewWorkspaceStore()

	w, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestWorkspaceStore_SaveAndLoad(t *testing.T) {
	store := NewWorkspaceStore()
	ctx := context.Background()

	w := domain.NewWorkspace()
	w.Profile.FullName = "Jordan Reyes"
	w.Issues = []domain.Issue{{Label: "Tinnitus"}}
	require.NoError(t, store.Save(ctx, w))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Jordan Reyes", loaded.Profile.FullName)
	require.Len(t, loaded.Issues, 1)

	// Loaded aggregate is an independent copy.
	loaded.Profile.FullName = "Someone Else"
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", again.Profile.FullName)
}

func TestWorkspaceStore_SaveCountsAndErrors(t *testing.T) {
	store := NewWorkspaceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewWorkspace()))
	require.NoError(t, store.Save(ctx, domain.NewWorkspace()))
	assert.Equal(t, 2, store.Saves)

	store.SaveErr = assert.AnError
	assert.Error(t, store.Save(ctx, domain.NewWorkspace()))
	assert.Equal(t, 2, store.Saves)

	store.LoadErr = assert.AnError
	_, err := store.Load(ctx)
	assert.Error(t, err)
}

func TestWorkspaceStore_Close(t *testing.T) {
	assert.NoError(t, NewWorkspaceStore().Close())
}
