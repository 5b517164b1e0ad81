package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    LogLevel
		wantErr bool
	}{
		{name: "error", level: "error", want: LogLevelError},
		{name: "warn", level: "warn", want: LogLevelWarn},
		{name: "info", level: "info", want: LogLevelInfo},
		{name: "debug", level: "debug", want: LogLevelDebug},
		{name: "trace", level: "trace", want: LogLevelTrace},
		{name: "unknown", level: "loud", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_levelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelInfo)

	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)
	logger.Error("shown %d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	entry := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shown 2", entry["msg"])
}

func TestSetDefaultLogger(t *testing.T) {
	previous := defaultLogger
	defer SetDefaultLogger(previous)

	buf := &bytes.Buffer{}
	SetDefaultLogger(New(buf, "", 0, LogLevelWarn))

	Info("ignored")
	Warn("kept")

	assert.NotContains(t, buf.String(), "ignored")
	assert.Contains(t, buf.String(), "kept")
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]string {
	t.Helper()
	var entries []map[string]string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		entry := map[string]string{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	root := New(buf, "", 0, LogLevelInfo)
	flow := root.With("flow")

	root.Info("from root")
	flow.Info("from flow")
	flow.Debug("filtered")

	// level changes on the root reach derived loggers
	root.SetLevel(LogLevelDebug)
	flow.Debug("now shown")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	_, tagged := entries[0]["component"]
	assert.False(t, tagged)
	assert.Equal(t, "flow", entries[1]["component"])
	assert.Equal(t, "now shown", entries[2]["msg"])
	assert.Equal(t, LogLevelDebug, flow.Level())
}

func TestNamed(t *testing.T) {
	previous := defaultLogger
	defer SetDefaultLogger(previous)

	logger := Named("game")

	// replaced after the Named value was created
	buf := &bytes.Buffer{}
	SetDefaultLogger(New(buf, "", 0, LogLevelWarn))

	logger.Info("ignored")
	logger.Warn("kept %d", 1)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "game", entries[0]["component"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "kept 1", entries[0]["msg"])
}
