package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Host is the listen host; empty listens on all interfaces.
	Host string
	// Port accepts both "8080" and ":8080".
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	// Pprof mounts the runtime profiling endpoints under /debug/pprof.
	Pprof bool
}

// LoadServerConfig reads the SERVER_* variables.
func LoadServerConfig(env *Env) ServerConfig {
	return ServerConfig{
		Host:            env.String("SERVER_HOST", "127.0.0.1"),
		Port:            env.String("SERVER_PORT", "8080"),
		ReadTimeout:     env.Duration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    env.Duration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     env.Duration("SERVER_IDLE_TIMEOUT", 2*time.Minute),
		ShutdownTimeout: env.Duration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		Pprof:           env.Bool("SERVER_PPROF", false),
	}
}

// Address returns the listen address for http.Server.
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate validates server configuration.
func (c ServerConfig) Validate() error {
	if strings.TrimPrefix(c.Port, ":") == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	for _, t := range []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", c.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", c.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", c.IdleTimeout},
	} {
		if t.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", t.name, t.value)
		}
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must not be negative, got %s", c.ShutdownTimeout)
	}
	return nil
}
