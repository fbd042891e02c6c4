package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging/types"
)

// captureAdapter records every entry it receives.
type captureAdapter struct {
	name    string
	entries []*types.LogEntry
	closed  bool
}

func (a *captureAdapter) Write(entry *types.LogEntry) error {
	a.entries = append(a.entries, entry)
	return nil
}

func (a *captureAdapter) Close() error {
	a.closed = true
	return nil
}

func (a *captureAdapter) Health() error { return nil }
func (a *captureAdapter) Name() string  { return a.name }

func TestMultiLogger_LevelFiltering(t *testing.T) {
	logger := NewMultiLogger()
	sink := &captureAdapter{name: "sink"}
	require.NoError(t, logger.AddAdapter(sink))
	logger.SetLevel(WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	require.Len(t, sink.entries, 2)
	assert.Equal(t, "warn message", sink.entries[0].Message)
	assert.Equal(t, ErrorLevel, sink.entries[1].Level)
}

func TestMultiLogger_WithFieldStampsEveryEntry(t *testing.T) {
	logger := NewMultiLogger()
	sink := &captureAdapter{name: "sink"}
	require.NoError(t, logger.AddAdapter(sink))

	reqLogger := logger.WithField("request_id", "abc-123")
	reqLogger.Info("first")
	reqLogger.Info("second", map[string]interface{}{"user_id": "u1"})

	require.Len(t, sink.entries, 2)
	assert.Equal(t, "abc-123", sink.entries[0].Fields["request_id"])
	assert.Equal(t, "abc-123", sink.entries[1].Fields["request_id"])
	assert.Equal(t, "u1", sink.entries[1].Fields["user_id"])
}

func TestMultiLogger_DerivedLoggerDoesNotMutateParent(t *testing.T) {
	logger := NewMultiLogger()
	sink := &captureAdapter{name: "sink"}
	require.NoError(t, logger.AddAdapter(sink))

	logger.WithFields(map[string]interface{}{"component": "invoker"})
	logger.Info("plain")

	require.Len(t, sink.entries, 1)
	assert.NotContains(t, sink.entries[0].Fields, "component")
}

func TestMultiLogger_DuplicateAdapterRejected(t *testing.T) {
	logger := NewMultiLogger()
	require.NoError(t, logger.AddAdapter(&captureAdapter{name: "sink"}))
	assert.Error(t, logger.AddAdapter(&captureAdapter{name: "sink"}))
}

func TestMultiLogger_CloseClosesAdapters(t *testing.T) {
	logger := NewMultiLogger()
	sink := &captureAdapter{name: "sink"}
	require.NoError(t, logger.AddAdapter(sink))

	require.NoError(t, logger.Close())
	assert.True(t, sink.closed)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLogLevel("WARNING"))
	assert.Equal(t, FatalLevel, ParseLogLevel("fatal"))
	assert.Equal(t, InfoLevel, ParseLogLevel("garbage"))
}
