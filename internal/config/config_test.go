package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ":8090", cfg.Listen)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.URL)
	assert.Equal(t, 15, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, "@hourly", cfg.Refresh.Schedule)
	assert.Equal(t, 3, cfg.Grid.WindowDays)
}

func TestLoad_YAMLFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9000"
backend:
  url: "http://backend:8080"
  timeoutseconds: 5
refresh:
  schedule: "*/30 * * * *"
`), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "http://backend:8080", cfg.Backend.URL)
	assert.Equal(t, 5, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, "*/30 * * * *", cfg.Refresh.Schedule)
	// Untouched keys keep their defaults.
	assert.Equal(t, 3, cfg.Grid.WindowDays)
}

func TestLoad_EnvOverridesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9000\"\n"), 0o600))

	t.Setenv("HALLVIEW_LISTEN", ":7777")
	t.Setenv("HALLVIEW_BACKEND_URL", "http://elsewhere:5000")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Listen)
	assert.Equal(t, "http://elsewhere:5000", cfg.Backend.URL)
}
