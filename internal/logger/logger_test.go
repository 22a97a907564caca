package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("salesctl")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "salesctl", entry["role"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("dashboard", path)
	l.Info().Str("screen", "login").Msg("rendered")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "dashboard", entry["role"])
	assert.Equal(t, "login", entry["screen"])
	assert.True(t, strings.Contains(entry["func"].(string), "TestNewClientLogger_WritesToFile"))
}

func TestNewClientLogger_UnwritablePathFallsBack(t *testing.T) {
	l := NewClientLogger("dashboard", filepath.Join(t.TempDir(), "missing-dir", "client.log"))
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "parent").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	assert.Equal(t, "parent", decodeEntry(t, buf.Bytes())["role"])
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	parent.WithComponent("session").Info().Msg("x")

	assert.Equal(t, "session", decodeEntry(t, buf.Bytes())["component"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace", "abc").Logger()
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")

	assert.Equal(t, "abc", decodeEntry(t, buf.Bytes())["trace"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
