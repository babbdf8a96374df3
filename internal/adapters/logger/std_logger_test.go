package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warning", LevelWarn},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{" critical ", LevelCritical},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestStdLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewCustomStdLogger(Options{Output: &buf, Level: LevelWarn})
	require.NoError(t, err)

	log.Debug("debug-marker")
	log.Info("info-marker")
	log.Warn("warn-marker")
	log.Error("error-marker")
	require.NoError(t, log.Close())

	out := buf.String()
	assert.NotContains(t, out, "debug-marker")
	assert.NotContains(t, out, "info-marker")
	assert.Contains(t, out, "warn-marker")
	assert.Contains(t, out, "error-marker")
}

func TestStdLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewCustomStdLogger(Options{Output: &buf, Level: LevelDebug})
	require.NoError(t, err)

	log.Debug("debug-marker", "key", "value")
	log.Info("info-marker")
	require.NoError(t, log.Close())

	out := buf.String()
	assert.Contains(t, out, "debug-marker")
	assert.Contains(t, out, "info-marker")
}

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		level Level
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LevelCritical, slog.LevelError},
	}
	for _, tc := range tests {
		t.Run(tc.level.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.level.slogLevel())
		})
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestStdLoggerLeavesOutputOpen(t *testing.T) {
	out := &closeRecorder{}
	log, err := NewCustomStdLogger(Options{Output: out, Level: LevelInfo})
	require.NoError(t, err)

	log.Info("info-marker")
	require.NoError(t, log.Close())

	assert.False(t, out.closed)
	assert.Contains(t, out.String(), "info-marker")
}

func TestStdLoggerCriticalSilencesAll(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewCustomStdLogger(Options{Output: &buf, Level: LevelCritical})
	require.NoError(t, err)

	log.Error("error-marker")
	require.NoError(t, log.Close())

	assert.NotContains(t, buf.String(), "error-marker")
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("ignored")
	assert.NoError(t, log.Close())
}
