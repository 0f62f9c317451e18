package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-keeper/models"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_GlobalLevelIsInfo verifies that the bootstrap logger keeps
// the global zerolog level at Info until the configuration resolves.
func TestNewLogger_GlobalLevelIsInfo(t *testing.T) {
	NewLogger("level-role")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestFromSettings_AppliesLogLevel verifies the resolved minimum level takes
// effect globally.
func TestFromSettings_AppliesLogLevel(t *testing.T) {
	FromSettings("settings-role", models.LoggingConfig{LogLevel: "debug", LogFormat: "json"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	FromSettings("settings-role", models.LoggingConfig{LogLevel: "warn", LogFormat: "json"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

// TestFromSettings_InvalidLevelFallsBackToInfo verifies an unparseable level
// degrades to Info instead of failing.
func TestFromSettings_InvalidLevelFallsBackToInfo(t *testing.T) {
	FromSettings("settings-role", models.LoggingConfig{LogLevel: "loud", LogFormat: "json"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestFromSettings_RoleField verifies the derived logger carries the role
// field like the bootstrap one.
func TestFromSettings_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := FromSettings("resolved-role", models.LoggingConfig{LogLevel: "info", LogFormat: "json"})
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolved-role", entry["role"])
}

// TestFromSettings_CallerToggle verifies LogCaller controls the caller field.
func TestFromSettings_CallerToggle(t *testing.T) {
	var buf bytes.Buffer
	l := FromSettings("caller-toggle", models.LoggingConfig{LogLevel: "info", LogFormat: "json", LogCaller: false})
	l.Logger = l.Output(&buf)

	l.Info().Msg("no caller")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasCaller := entry[zerolog.CallerFieldName]
	assert.False(t, hasCaller, "expected no caller field when LogCaller is off")
}

// TestNop_NotNil verifies that Nop returns a non-nil *Logger.
func TestNop_NotNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_NotNil verifies that GetChildLogger returns a non-nil *Logger.
func TestGetChildLogger_NotNil(t *testing.T) {
	parent := NewLogger("parent")
	child := parent.GetChildLogger()
	require.NotNil(t, child)
}

// TestGetChildLogger_IsIndependent verifies that the child logger is a
// distinct instance from the parent.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("parent")
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}
