package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "invalid defaults to info", level: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(Config{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	componentLogger := ComponentLogger(logger, "engine")
	componentLogger.Info().Msg("ready")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "engine", line["component"])
	assert.Equal(t, "ready", line["message"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	FromContext(ctx).Info().Msg("attached")
	assert.Contains(t, buf.String(), "attached")

	// Without an attached logger the result is disabled, not nil.
	disabled := FromContext(context.Background())
	require.NotNil(t, disabled)
	assert.Equal(t, zerolog.Disabled, disabled.GetLevel())
}

func TestNewTraceID(t *testing.T) {
	a := NewTraceID()
	b := NewTraceID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
