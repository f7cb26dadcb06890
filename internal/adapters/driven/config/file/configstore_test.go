package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStoreDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg := store.Config()
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Empty(t, cfg.DropDir)
	assert.False(t, cfg.Verbose)
}

func TestConfigStorePersistsChanges(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SetAPIBaseURL("http://api.example.com"))
	require.NoError(t, store.SetDropDir("/tmp/resumes"))

	// A fresh store reads the same values back.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com", reloaded.Config().APIBaseURL)
	assert.Equal(t, "/tmp/resumes", reloaded.Config().DropDir)
}

func TestConfigStoreFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStoreLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := "api_base_url = \"http://other:8080\"\nverbose = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://other:8080", store.Config().APIBaseURL)
	assert.True(t, store.Config().Verbose)
}

func TestConfigStoreEmptyBaseURLFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("api_base_url = \"\"\n"), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", store.Config().APIBaseURL)
}
