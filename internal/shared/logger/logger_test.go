package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONLevelFiltering(t *testing.T) {
	// 1. Setup
	var buf bytes.Buffer
	log, err := newLogger(&buf, false, "warn")
	require.NoError(t, err)

	// 2. Run
	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("shown")

	// 3. Verify only the warning was written, as JSON
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNew_DevConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, true, "")
	require.NoError(t, err)

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(false, "loud")
	assert.Error(t, err)
}
