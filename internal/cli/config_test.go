package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.Format)
	assert.True(t, cfg.Optimize)
	assert.Equal(t, 100, cfg.MaxIterations)
	assert.InDelta(t, 0.01, cfg.BandWidth, 1e-12)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "format: json\nmax_iterations: 50\nrobust: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.True(t, cfg.Robust)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0o644))

	t.Setenv("TEAMDRAFT_FORMAT", "json")
	t.Setenv("TEAMDRAFT_LOG_LEVEL", "debug")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_EngineOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxIterations = 7
	cfg.Robust = true
	cfg.Optimize = false

	opts := cfg.engineOptions()
	require.Len(t, opts, 1)
}
