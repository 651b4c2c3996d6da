package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesConfigInDir(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultsToClaimmateHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	store, err := NewConfigStore("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claimmate", "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesNestedDataDir(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "deep", "config")

	store, err := NewConfigStore(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nested, "config.toml"), store.Path())

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_BadDir(t *testing.T) {
	store, err := NewConfigStore("/dev/null/claimmate")
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("generator.provider", "anthropic"))
	require.NoError(t, store.Set("generator.model", "claude-3-5-sonnet-latest"))
	require.NoError(t, store.Set("storage.backend", "sqlite"))

	// A fresh store against the same dir sees the values: each Set
	// writes the file, no explicit Save needed.
	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", reopened.GetString("generator.provider"))
	assert.Equal(t, "claude-3-5-sonnet-latest", reopened.GetString("generator.model"))
	assert.Equal(t, "sqlite", reopened.GetString("storage.backend"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()

	// A hand-edited config uses TOML tables; the store reads them
	// back under the same dot-notation keys the settings service uses.
	content := `[generator]
provider = "ollama"
model = "llama3.2"
base_url = "http://localhost:11434"

[storage]
backend = "file"
data_dir = "/tmp/claimmate"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "ollama", store.GetString("generator.provider"))
	assert.Equal(t, "llama3.2", store.GetString("generator.model"))
	assert.Equal(t, "http://localhost:11434", store.GetString("generator.base_url"))
	assert.Equal(t, "file", store.GetString("storage.backend"))
	assert.Equal(t, "/tmp/claimmate", store.GetString("storage.data_dir"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	tmpDir := t.TempDir()

	content := `[generator]
max_tokens = 400
verbose_pings = true
prompt_overrides = ["mapping_system", "chat_system"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// TOML integers come back as int64; GetInt narrows them.
	assert.Equal(t, 400, store.GetInt("generator.max_tokens"))
	assert.True(t, store.GetBool("generator.verbose_pings"))
	assert.Equal(t, []string{"mapping_system", "chat_system"}, store.GetStringSlice("generator.prompt_overrides"))

	// Absent or mistyped keys read as zero values.
	assert.Equal(t, "", store.GetString("generator.api_key"))
	assert.Equal(t, 0, store.GetInt("generator.verbose_pings"))
	assert.False(t, store.GetBool("generator.max_tokens"))
	assert.Nil(t, store.GetStringSlice("generator.max_tokens"))
	_, ok := store.Get("storage.backend")
	assert.False(t, ok)
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("generator.provider")
	assert.False(t, ok)
}

func TestConfigStore_CommentOnlyFileStartsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# claimmate settings\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("generator.provider")
	assert.False(t, ok)
}

func TestConfigStore_CorruptFileFailsOpen(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[generator\nprovider ="), 0600))

	store, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_LoadSurfacesReadError(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("generator.provider", "openai"))

	require.NoError(t, os.Chmod(store.Path(), 0000))
	defer func() { _ = os.Chmod(store.Path(), 0600) }()

	err = store.Load()
	assert.Error(t, err)
	assert.False(t, os.IsNotExist(err))
}

func TestConfigStore_SetSurfacesWriteError(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("generator.provider", "openai"))

	// A directory where the file should be makes the write fail.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("generator.model", "gpt-4o-mini")
	assert.Error(t, err)
}

func TestConfigStore_FileKeepsRestrictedPermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// The config can hold an API key, so the file stays 0600.
	require.NoError(t, store.Set("generator.api_key", "sk-test"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SaveWritesPendingData(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["storage.data_dir"] = "/var/lib/claimmate"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/claimmate", reopened.GetString("storage.data_dir"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			_ = store.Set("generator.model", "gpt-4o-mini")
			_ = store.GetString("generator.model")
			_, _ = store.Get("generator.provider")
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, "gpt-4o-mini", store.GetString("generator.model"))
}
