package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.Service.BaseURL)
	require.Equal(t, "/generate-essay", cfg.Service.Path)
	require.Equal(t, "writer", cfg.Service.Shape)
	require.Equal(t, 120, cfg.Service.TimeoutSeconds)
	require.NotEmpty(t, cfg.Logger.File)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("INKWELL_SERVICE_BASE_URL", "https://writer.example.com")
	t.Setenv("INKWELL_SERVICE_SHAPE", "essay")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://writer.example.com", cfg.Service.BaseURL)
	require.Equal(t, "essay", cfg.Service.Shape)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[service]\nbase_url = \"http://10.0.0.5:9000\"\ntimeout_seconds = 30\n\n[export]\ndir = \"" + dir + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://10.0.0.5:9000", cfg.Service.BaseURL)
	require.Equal(t, 30, cfg.Service.TimeoutSeconds)
	require.Equal(t, dir, cfg.Export.Dir)
}
