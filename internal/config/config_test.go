package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Load(envOf(nil))
}

func TestLoad_Defaults(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Ingest.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_CustomValues(t *testing.T) {
	env := envOf(map[string]string{
		"GIN_MODE":        "debug",
		"SERVER_PORT":     ":9090",
		"SERVER_PPROF":    "true",
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "json",
		"INGEST_ENABLED":  "false",
		"FEEDS_FILE":      "feeds.yaml",
		"FEED_TIMEOUT":    "5s",
		"FEED_USER_AGENT": "tests",
	})

	cfg := Load(env)
	require.NoError(t, env.Err())

	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	assert.True(t, cfg.Server.Pprof)
	assert.Equal(t, LoggerConfig{Level: "debug", Format: FormatJSON, Output: "stdout"}, cfg.Logger)
	assert.Equal(t, IngestConfig{
		Enabled:   false,
		FeedsFile: "feeds.yaml",
		Timeout:   5 * time.Second,
		UserAgent: "tests",
	}, cfg.Ingest)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MalformedProcessValue(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "ten seconds")

	env := NewEnv()
	cfg := Load(env)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)

	err := env.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_READ_TIMEOUT")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "gin mode",
			mutate:  func(c *Config) { c.GinMode = "production" },
			wantErr: []string{"GIN_MODE"},
		},
		{
			name:    "server section",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: []string{"server config", "SERVER_PORT"},
		},
		{
			name:    "ingest section",
			mutate:  func(c *Config) { c.Ingest.Timeout = -time.Second },
			wantErr: []string{"ingest config", "FEED_TIMEOUT"},
		},
		{
			name: "every problem is reported",
			mutate: func(c *Config) {
				c.Logger.Format = "xml"
				c.Server.IdleTimeout = 0
				c.GinMode = ""
			},
			wantErr: []string{"logger config", "LOG_FORMAT", "SERVER_IDLE_TIMEOUT", "GIN_MODE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, fragment := range tt.wantErr {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}
}
