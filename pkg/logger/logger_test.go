package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/footballdb/internal/config"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func TestNew_FromEnv(t *testing.T) {
	env := appConfig.NewEnvFrom(appConfig.MapLookup(map[string]string{
		"LOG_LEVEL":  "debug",
		"LOG_FORMAT": "console",
	}))

	logger, err := New(appConfig.LoadLoggerConfig(env))
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		blocked zapcore.Level
	}{
		{level: "debug", enabled: zapcore.DebugLevel, blocked: zapcore.DebugLevel - 1},
		{level: "info", enabled: zapcore.InfoLevel, blocked: zapcore.DebugLevel},
		{level: "warn", enabled: zapcore.WarnLevel, blocked: zapcore.InfoLevel},
		{level: "error", enabled: zapcore.ErrorLevel, blocked: zapcore.WarnLevel},
		{level: "WARN", enabled: zapcore.WarnLevel, blocked: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(appConfig.LoggerConfig{Level: tt.level, Format: "json", Output: "stderr"})
			require.NoError(t, err)

			core := logger.Desugar().Core()
			assert.True(t, core.Enabled(tt.enabled))
			assert.False(t, core.Enabled(tt.blocked))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(appConfig.LoggerConfig{Level: "not-a-level", Format: "json", Output: "stderr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-level")
}

func TestNew_EmptyConfig(t *testing.T) {
	logger, err := New(appConfig.LoggerConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "footballdb.log")

	logger, err := New(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Debugw("dropped", "feed", "en.1")
	logger.Infow("clubs loaded", "league", "Premier League", "clubs", 20)
	require.NoError(t, logger.Sync())

	lines := readLines(t, path)
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "clubs loaded", entry["msg"])
	assert.Equal(t, "Premier League", entry["league"])
	assert.EqualValues(t, 20, entry["clubs"])
}

func TestNew_ConsoleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	logger, err := New(appConfig.LoggerConfig{Level: "debug", Format: "console", Output: path})
	require.NoError(t, err)

	logger.Infow("feed skipped", "url", "https://example.com/en.1.clubs.json")
	require.NoError(t, logger.Sync())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "INFO")
	assert.Contains(t, lines[0], "feed skipped")
	assert.Contains(t, lines[0], `"url": "https://example.com/en.1.clubs.json"`)
	assert.False(t, json.Valid([]byte(lines[0])))
}

func TestNew_UnwritableOutput(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := New(appConfig.LoggerConfig{Level: "info", Format: "json", Output: filepath.Join(blocker, "app.log")})
	assert.Error(t, err)
}

func BenchmarkLoggerInfow(b *testing.B) {
	logger, err := New(appConfig.LoggerConfig{Level: "info", Format: "json", Output: filepath.Join(b.TempDir(), "bench.log")})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infow("game inserted", "match_name", "Matchday 1", "season", 2015)
	}
}
