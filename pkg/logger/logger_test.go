package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, false, "debug")

	Log.Debug().Str("ref", "/wiki/Go").Msg("fetching")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "/wiki/Go", entry["ref"])
	assert.Equal(t, "fetching", entry["message"])
}

func TestInitWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, false, "warn")

	Log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	Log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitWithWriter_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, false, "loud")

	Log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	Log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"", true},
		{"dev", true},
		{"development", true},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("ENV", tt.env)
			assert.Equal(t, tt.want, IsDev())
		})
	}
}
