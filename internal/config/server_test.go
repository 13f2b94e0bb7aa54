package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerConfig(t *testing.T) {
	cfg := LoadServerConfig(envOf(nil))
	assert.Equal(t, ServerConfig{
		Host:            "127.0.0.1",
		Port:            "8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     2 * time.Minute,
		ShutdownTimeout: 15 * time.Second,
	}, cfg)

	cfg = LoadServerConfig(envOf(map[string]string{
		"SERVER_HOST":             "0.0.0.0",
		"SERVER_WRITE_TIMEOUT":    "1m",
		"SERVER_SHUTDOWN_TIMEOUT": "0s",
	}))
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)
	assert.Zero(t, cfg.ShutdownTimeout)
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{"127.0.0.1", "8080", "127.0.0.1:8080"},
		{"127.0.0.1", ":8080", "127.0.0.1:8080"},
		{"", "8080", ":8080"},
		{"::1", "9000", "[::1]:9000"},
	}
	for _, tt := range tests {
		cfg := ServerConfig{Host: tt.host, Port: tt.port}
		assert.Equal(t, tt.want, cfg.Address())
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := LoadServerConfig(envOf(nil))
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*ServerConfig)
		want   string
	}{
		{"missing port", func(c *ServerConfig) { c.Port = ":" }, "SERVER_PORT"},
		{"zero read timeout", func(c *ServerConfig) { c.ReadTimeout = 0 }, "SERVER_READ_TIMEOUT"},
		{"negative write timeout", func(c *ServerConfig) { c.WriteTimeout = -time.Second }, "SERVER_WRITE_TIMEOUT"},
		{"negative shutdown timeout", func(c *ServerConfig) { c.ShutdownTimeout = -time.Second }, "SERVER_SHUTDOWN_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}

	noShutdownWait := valid
	noShutdownWait.ShutdownTimeout = 0
	assert.NoError(t, noShutdownWait.Validate())
}
