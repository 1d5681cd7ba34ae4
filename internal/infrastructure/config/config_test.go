package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://ecole.example/dev.json", store.Settings.FeedURL)
	assert.Equal(t, "k", store.Settings.KeyMap.Up)
	assert.Equal(t, "2", store.Settings.KeyMap.FilterHomework)
	assert.Equal(t, "39", store.Settings.Theme.Blue)
	assert.Equal(t, 160, store.Settings.DebounceMS)

	// First load creates the file with defaults.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `feed_url: https://college.example/agenda.json
debounce_ms: 80
keymap:
  quit: Q
theme:
  red: "160"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://college.example/agenda.json", store.Settings.FeedURL)
	assert.Equal(t, 80, store.Settings.DebounceMS)
	assert.Equal(t, "Q", store.Settings.KeyMap.Quit)
	assert.Equal(t, "160", store.Settings.Theme.Red)
	// Unset values keep their defaults.
	assert.Equal(t, "k", store.Settings.KeyMap.Up)
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Load(path)
	require.NoError(t, err)

	store.Settings.FeedURL = "https://autre.example/dev.json"
	require.NoError(t, store.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://autre.example/dev.json", reloaded.Settings.FeedURL)
}
