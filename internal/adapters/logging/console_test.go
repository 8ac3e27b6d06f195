package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

func TestConsoleLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false))

	logger.Info(context.Background(), "attach sequence complete", ports.F("succeeded", 5))

	assert.Equal(t, "[INFO] attach sequence complete succeeded=5\n", buf.String())
}

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false))

	logger.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	verbose := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false), WithLevel(ports.LevelDebug))
	verbose.Debug(context.Background(), "visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestConsoleLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithJSONFormat(true), WithTimestamp(false))

	logger.Warn(context.Background(), "soft step failed", ports.F("step", "settings:load"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "soft step failed", entry["msg"])
	assert.Equal(t, "settings:load", entry["step"])
}

func TestConsoleLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false)).
		With(ports.F("run_id", "abc"))

	logger.Info(context.Background(), "starting liftoff")

	assert.Contains(t, buf.String(), "run_id=abc")
}
