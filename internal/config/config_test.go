package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"SERVER_ADDR", "DATA_PATH", "LOG_LEVEL", "GITHUB_ACCOUNT", "GITHUB_TOKEN",
		"GITHUB_API_URL", "SYNC_TIMEOUT", "FIELD_WIDTH", "FIELD_HEIGHT", "FIELD_FPS", "FIELD_SEED"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultAccount, cfg.GitHub.Account)
	assert.Equal(t, "https://github.com/Bavatarinee", cfg.GitHub.ProfileURL())
	assert.Zero(t, cfg.GitHub.SyncTimeout)
	assert.Equal(t, 1280, cfg.Field.Width)
	assert.Equal(t, 720, cfg.Field.Height)
	assert.Equal(t, time.Second/60, cfg.Field.FrameInterval())
	assert.NotNil(t, cfg.Site)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("GITHUB_ACCOUNT", "someone")
	t.Setenv("SYNC_TIMEOUT", "15s")
	t.Setenv("FIELD_FPS", "30")
	t.Setenv("FIELD_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, "someone", cfg.GitHub.Account)
	assert.Equal(t, 15*time.Second, cfg.GitHub.SyncTimeout)
	assert.Equal(t, time.Second/30, cfg.Field.FrameInterval())
	assert.Equal(t, uint64(7), cfg.Field.Seed)
}

func TestLoad_InvalidNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("FIELD_WIDTH", "wide")

	_, err := Load()
	assert.ErrorContains(t, err, "FIELD_WIDTH")
}

func TestLoad_SiteFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("DATA_PATH", dir)

	site := `
owner: Bavatarinee
account: from-file
tagline: Building with data
cursor_ease: 0.2
theme:
  grid_step: 40
  accent_chance: 0.5
stats:
  - label: Projects
    value: "12"
  - label: Curiosity
    value: "∞"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(site), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.GitHub.Account)
	assert.Equal(t, "Building with data", cfg.Site.Tagline)
	assert.Equal(t, 0.2, cfg.Site.CursorEase)
	require.NotNil(t, cfg.Site.Theme)
	assert.Equal(t, 40.0, cfg.Site.Theme.GridStep)
	require.Len(t, cfg.Site.Stats, 2)
	assert.Equal(t, "∞", cfg.Site.Stats[1].Value)
}

func TestLoad_BadSiteFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("DATA_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("stats: [oops"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse")
}
