// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	clearClientEnv(t)
	envVars := map[string]string{
		"CONFIG":   "/path/to/config.json",
		"ENV_FILE": "/path/to/.env",

		"APP_HASH_KEY":                     "secret",
		"APP_KEEP_SESSION_ON_UNAUTHORIZED": "true",
		"APP_LOG_FILE":                     "client.log",

		"STORAGE_DB_DSN": "sales.db",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "20s",

		"WORKERS_EXPIRY_CHECK_INTERVAL":   "1m",
		"WORKERS_DRAFT_AUTOSAVE_INTERVAL": "10s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/path/to/.env", cfg.EnvFilePath)
	assert.Equal(t, "secret", cfg.App.HashKey)
	assert.True(t, cfg.App.KeepSessionOnUnauthorized)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "sales.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.ExpiryCheckInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.DraftAutosaveInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	clearClientEnv(t)
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseDotEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "client.env")
	require.NoError(t, os.WriteFile(p, []byte(
		"# local overrides\nAPP_HASH_KEY=from-file\nADAPTER_ADDRESS=http://localhost:3000\nENV_FILE=other.env\n"), 0o600))

	cfg, err := parseDotEnv(p, true)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.HashKey)
	assert.Equal(t, "http://localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.EnvFilePath)
	_, leaked := os.LookupEnv("APP_HASH_KEY")
	assert.False(t, leaked && os.Getenv("APP_HASH_KEY") == "from-file", "dotenv must not modify the process env")
}

func TestParseDotEnv_Missing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.env")

	cfg, err := parseDotEnv(p, false)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	_, err = parseDotEnv(p, true)
	assert.Error(t, err)
}
