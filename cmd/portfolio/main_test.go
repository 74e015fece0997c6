package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bavatarinee.dev/internal/config"
	"bavatarinee.dev/internal/models"
)

func TestGenerateWritesFrames(t *testing.T) {
	cfg = &config.Config{Field: config.FieldConfig{Width: 24, Height: 16, FPS: 60, Seed: 3}}
	logger = zap.NewNop()
	generateFrames = 3
	dir := filepath.Join(t.TempDir(), "frames")

	require.NoError(t, runGenerate(generateCmd, []string{dir}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "frame_0000.png", entries[0].Name())

	f, err := os.Open(filepath.Join(dir, "frame_0002.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestGenerateRejectsZeroFrames(t *testing.T) {
	cfg = &config.Config{Field: config.FieldConfig{Width: 24, Height: 16}}
	logger = zap.NewNop()
	generateFrames = 0

	assert.Error(t, runGenerate(generateCmd, []string{t.TempDir()}))
}

func TestPrintGrid(t *testing.T) {
	var buf bytes.Buffer
	printGrid(&buf, models.ProjectList{
		Projects: []models.Project{{
			Number:      "01",
			Title:       "eye disease classifier",
			Category:    "Healthcare · Deep Learning",
			Stars:       "⭐ 3",
			Description: "Retinal image classifier.",
			URL:         "https://github.com/Bavatarinee/eye-disease-classifier",
		}},
		Status: "Live — synced from GitHub · 1 repos · updated 09:30",
	})

	out := buf.String()
	assert.Contains(t, out, "eye disease classifier")
	assert.Contains(t, out, "Healthcare · Deep Learning")
	assert.Contains(t, out, "⭐ 3")
	assert.Contains(t, out, "1 repos")

	buf.Reset()
	printGrid(&buf, models.ProjectList{Failed: true, ProfileURL: "https://github.com/Bavatarinee", Status: "Could not sync — see GitHub"})
	assert.Contains(t, buf.String(), "https://github.com/Bavatarinee")
	assert.Contains(t, buf.String(), "Could not sync")
}
