// Package config provides application configuration loaded from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Ingest IngestConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// Load reads every application section from env.
func Load(env *Env) Config {
	return Config{
		Server:  LoadServerConfig(env),
		Logger:  LoadLoggerConfig(env),
		Ingest:  LoadIngestConfig(env),
		GinMode: env.String("GIN_MODE", gin.ReleaseMode),
	}
}

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	for _, section := range []struct {
		name  string
		check func() error
	}{
		{"server", c.Server.Validate},
		{"logger", c.Logger.Validate},
		{"ingest", c.Ingest.Validate},
	} {
		if err := section.check(); err != nil {
			errs = append(errs, fmt.Errorf("%s config: %w", section.name, err))
		}
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("invalid GIN_MODE %q (want debug, release or test)", c.GinMode))
	}

	return errors.Join(errs...)
}
