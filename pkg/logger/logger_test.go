package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_WritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})

	l.Info().Str("asset", "Licensed IP").Msg("valued")

	assert.Contains(t, buf.String(), `"message":"valued"`)
	assert.Contains(t, buf.String(), `"asset":"Licensed IP"`)
}

func TestNew_AllLogLevels(t *testing.T) {
	testCases := []struct {
		level         string
		expectedLevel zerolog.Level
		name          string
	}{
		{"debug", zerolog.DebugLevel, "debug"},
		{"info", zerolog.InfoLevel, "info"},
		{"warn", zerolog.WarnLevel, "warn"},
		{"error", zerolog.ErrorLevel, "error"},
		{"unknown", zerolog.InfoLevel, "unknown defaults to info"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(Config{Level: tc.level, Output: &buf})
			assert.Equal(t, tc.expectedLevel, zerolog.GlobalLevel())
		})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestNew_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Pretty: true, Output: &buf})

	l.Info().Msg("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.NotContains(t, output, `"message"`)
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, zerolog.WarnLevel, level)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}
