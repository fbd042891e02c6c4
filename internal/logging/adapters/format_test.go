package adapters

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging/types"
)

func sampleEntry() *types.LogEntry {
	return &types.LogEntry{
		Level:     types.InfoLevel,
		Message:   "resume structured",
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Fields: map[string]interface{}{
			"user_id":    "u1",
			"request_id": "abc-123",
		},
	}
}

func TestFormatEntry_JSON(t *testing.T) {
	line, err := formatEntry(sampleEntry(), "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	assert.Equal(t, "info", decoded["level"])
	assert.Equal(t, "resume structured", decoded["message"])
	assert.Equal(t, "abc-123", decoded["request_id"])
}

func TestFormatEntry_TextSortsFields(t *testing.T) {
	line, err := formatEntry(sampleEntry(), "text")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30T12:00:00.000Z [INFO] resume structured request_id=abc-123 user_id=u1", line)
}

func TestFormatEntry_UnknownFormatFallsBackToJSON(t *testing.T) {
	line, err := formatEntry(sampleEntry(), "")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(line)))
}
