package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MEETMINT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultMetricsAddr, cfg.MetricsAddr)
	assert.Equal(t, DefaultCalendarID, cfg.CalendarID)
	assert.Equal(t, DefaultTimeZone, cfg.TimeZone)
	assert.Equal(t, DefaultAccount, cfg.Account)
	assert.Equal(t, DefaultRedirectURI, cfg.GoogleRedirectURI)
	assert.True(t, cfg.MetricsEnabled)
	assert.NotEmpty(t, cfg.StorePath)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
client_id = "file-client-id"
client_secret = "file-secret"
calendar_id = "team@example.com"
time_zone = "Europe/Berlin"
`)
	t.Setenv("MEETMINT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-client-id", cfg.GoogleClientID)
	assert.Equal(t, "file-secret", cfg.GoogleClientSecret)
	assert.Equal(t, "team@example.com", cfg.CalendarID)
	assert.Equal(t, "Europe/Berlin", cfg.TimeZone)
	assert.True(t, cfg.HasCredentials())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
client_id = "file-client-id"
http_addr = ":7070"
`)
	t.Setenv("MEETMINT_CONFIG", path)
	t.Setenv("GOOGLE_CLIENT_ID", "env-client-id")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-client-id", cfg.GoogleClientID)
	assert.Equal(t, ":7070", cfg.HTTPAddr, "file value survives when env is unset")
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `client_id = [not toml`)
	t.Setenv("MEETMINT_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestHasCredentials(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasCredentials())

	cfg.GoogleClientID = "id"
	assert.False(t, cfg.HasCredentials())

	cfg.GoogleClientSecret = "secret"
	assert.True(t, cfg.HasCredentials())
}
