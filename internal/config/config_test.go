package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.LLM.Model)
	assert.Equal(t, 8192, cfg.LLM.MaxTokens)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "in", cfg.Adzuna.Country)
	assert.Equal(t, 60, cfg.Adzuna.RateLimit)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileSize)
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
llm:
  model: "gemini-2.0-flash"
adzuna:
  country: "gb"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, "gb", cfg.Adzuna.Country)
	// Untouched values keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("ADZUNA_APP_ID", "env-id")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-id", cfg.Adzuna.AppID)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_CONFIG_VALUE", "expanded")

	assert.Equal(t, "value: expanded", expandEnvVars("value: ${TEST_CONFIG_VALUE}"))
	assert.Equal(t, "value: expanded", expandEnvVars("value: $TEST_CONFIG_VALUE"))
	// Unset variables are left as-is rather than replaced with empty strings.
	assert.Equal(t, "value: ${TEST_CONFIG_UNSET_VALUE}", expandEnvVars("value: ${TEST_CONFIG_UNSET_VALUE}"))
}
