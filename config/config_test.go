package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesViewerConstants(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.InDelta(t, 1.25, cfg.Window.Aspect(), 1e-6)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 640\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, "Topiary Garden", cfg.Window.Title)
	assert.Equal(t, "textures", cfg.TextureDir)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("window: [1, 2"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.yml")
	require.NoError(t, os.WriteFile(zero, []byte("window:\n  height: 0\n"), 0o644))
	_, err = Load(zero)
	assert.ErrorIs(t, err, ErrInvalid)

	level := Default()
	level.LogLevel = "loud"
	assert.ErrorIs(t, level.Validate(), ErrInvalid)
}
