package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// clearClientEnv unsets every variable the client reads so the host
// environment cannot leak into a test.
func clearClientEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG", "ENV_FILE",
		"APP_HASH_KEY", "APP_KEEP_SESSION_ON_UNAUTHORIZED", "APP_LOG_FILE",
		"STORAGE_DB_DSN",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"WORKERS_EXPIRY_CHECK_INTERVAL", "WORKERS_DRAFT_AUTOSAVE_INTERVAL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier config keeps its
// values and later configs only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{HashKey: "from-flags"}},
		&StructuredConfig{App: App{HashKey: "from-env", LogFile: "client.log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.App.HashKey)
	assert.Equal(t, "client.log", cfg.App.LogFile)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultExpiryCheckInterval, cfg.Workers.ExpiryCheckInterval)
	assert.Equal(t, DefaultDraftAutosaveInterval, cfg.Workers.DraftAutosaveInterval)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithDotEnv_DefaultMissingFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_ExplicitMissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{EnvFilePath: filepath.Join(t.TempDir(), "missing.env")})

	b.withDotEnv()

	assert.Error(t, b.err)
}

// ── GetClientConfig ──────────────────────────────────────────────────────────

func TestGetClientConfig_Precedence(t *testing.T) {
	clearClientEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"hash_key": "json-key", "log_file": "json.log"},
		"adapter": map[string]any{"http_address": "http://json:1", "request_timeout": "5s"},
		"workers": map[string]any{"draft_autosave_interval": "10s"},
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("APP_HASH_KEY=dotenv-key\nSTORAGE_DB_DSN=dotenv.db\n"), 0o600))
	t.Setenv("ADAPTER_ADDRESS", "http://env:2")

	cfg, err := GetClientConfig([]string{"-c", jsonPath, "-request-timeout", "7s", "whoami"})
	require.NoError(t, err)

	assert.Equal(t, "http://env:2", cfg.Adapter.HTTPAddress, "env beats json")
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout, "flag beats json")
	assert.Equal(t, "dotenv-key", cfg.App.HashKey, ".env beats json")
	assert.Equal(t, "dotenv.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "json.log", cfg.App.LogFile)
	assert.Equal(t, 10*time.Second, cfg.Workers.DraftAutosaveInterval)
	assert.Equal(t, DefaultExpiryCheckInterval, cfg.Workers.ExpiryCheckInterval)
	assert.Equal(t, []string{"whoami"}, cfg.Args)
}

func TestGetClientConfig_MissingHashKey(t *testing.T) {
	clearClientEnv(t)
	t.Chdir(t.TempDir())

	_, err := GetClientConfig([]string{"-a", "localhost:8080"})

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	clearClientEnv(t)
	t.Chdir(t.TempDir())

	_, err := GetClientConfig([]string{"-no-such-flag"})

	assert.Error(t, err)
}
