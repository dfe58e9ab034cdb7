package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minos/internal/logging"
)

func TestNew_NonTerminalWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.Options{Level: slog.LevelWarn})

	log.Info("hidden")
	log.Warn("did not converge", slog.String("op", "SumUncorrelated"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "did not converge", rec["msg"])
	assert.Equal(t, "SumUncorrelated", rec["op"])
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, logging.IsTerminal(&bytes.Buffer{}))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}
