package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"hash_key": "secret",
			"keep_session_on_unauthorized": true,
			"log_file": "client.log"
		},
		"adapter": {
			"http_address": "https://api.example.com",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "sales.db" }
		},
		"workers": {
			"expiry_check_interval": "2m",
			"draft_autosave_interval": 5000000000
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.HashKey)
	assert.True(t, cfg.App.KeepSessionOnUnauthorized)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "sales.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.ExpiryCheckInterval)
	assert.Equal(t, 5*time.Second, cfg.Workers.DraftAutosaveInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
