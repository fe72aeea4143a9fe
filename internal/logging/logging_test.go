package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "passport.log")

	logger, err := New(path, "debug")
	require.NoError(t, err)

	logger.Debug("countries fetched", zap.Int("count", 250))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "countries fetched", entry["msg"])
	require.Equal(t, "debug", entry["level"])
	require.EqualValues(t, 250, entry["count"])
	require.Contains(t, entry, "pid")
}

func TestNew_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passport.log")

	logger, err := New(path, "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}

func TestNew_DisabledPaths(t *testing.T) {
	for _, path := range []string{"", "  ", "-"} {
		logger, err := New(path, "info")
		require.NoError(t, err)
		require.NotNil(t, logger)
		logger.Info("discarded")
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = ParseLevel(" ERROR ")
	require.NoError(t, err)
	require.Equal(t, zapcore.ErrorLevel, lvl)

	_, err = ParseLevel("loud")
	require.ErrorContains(t, err, "loud")

	_, err = New(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
}
