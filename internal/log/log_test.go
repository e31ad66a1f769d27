package log

import (
	"bytes"
	"encoding/json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestConfigure_Levels(t *testing.T) {
	var tests = []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer

			assert.Equal(t, tt.want, Configure(tt.level, &buf))
			assert.Equal(t, tt.want, log.Logger.GetLevel())
		})
	}
}

func TestConfigure_WritesJson(t *testing.T) {
	var buf bytes.Buffer
	Configure("info", &buf)

	log.Info().Str("checkId", "abc").Msg("evaluated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["checkId"])
	assert.Equal(t, "evaluated", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestSetLogLevel(t *testing.T) {
	SetLogLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())
}
