package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(contents), 0o644))
	return dir
}

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `
api:
  base_url: http://localhost:8000
  key: local-dev-key
  timeout: 5s
log:
  level: debug
analytics:
  cache_ttl: 30s
`)

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, "http://localhost:8000", AppConfig.API.BaseURL)
	assert.Equal(t, "local-dev-key", AppConfig.API.Key)
	assert.Equal(t, 5*time.Second, AppConfig.API.Timeout)
	assert.Equal(t, "debug", AppConfig.Log.Level)
	assert.Equal(t, 30*time.Second, AppConfig.Analytics.CacheTTL)
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	viper.Reset()
	t.Setenv("DASHBOARD_API_BASE_URL", "https://api.example.com")
	t.Setenv("DASHBOARD_API_KEY", "env-key")

	require.NoError(t, LoadConfig(t.TempDir()))

	assert.Equal(t, "https://api.example.com", AppConfig.API.BaseURL)
	assert.Equal(t, "env-key", AppConfig.API.Key)
	// defaults fill the rest
	assert.Equal(t, 15*time.Second, AppConfig.API.Timeout)
	assert.Equal(t, "info", AppConfig.Log.Level)
	assert.Equal(t, 5*time.Minute, AppConfig.Analytics.CacheTTL)
}

func TestLoadConfig_MissingRequiredValues(t *testing.T) {
	viper.Reset()

	err := LoadConfig(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
