package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EDITOR", "vi")
	t.Setenv("QUILL_EDITOR", "")
	t.Setenv("QUILL_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, defaultPort, cfg.Port)
	require.Equal(t, "vi", cfg.Editor)
	require.Empty(t, cfg.DataDir)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EDITOR", "vi")
	t.Setenv("QUILL_EDITOR", "nano")
	t.Setenv("QUILL_PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "nano", cfg.Editor)
	require.Equal(t, 9999, cfg.Port)
}

func TestConfigFileIsRead(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("QUILL_EDITOR", "")
	t.Setenv("QUILL_PORT", "")

	path := filepath.Join(dir, "quill")
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(path, "config.yaml"),
		[]byte("editor: helix\nport: 5000\n"),
		0o644,
	))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "helix", cfg.Editor)
	require.Equal(t, 5000, cfg.Port)
}
