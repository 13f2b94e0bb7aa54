package config

import (
	"fmt"
	"time"
)

// IngestConfig holds startup ingestion configuration.
type IngestConfig struct {
	// Enabled turns the startup feed ingestion on or off.
	Enabled bool
	// FeedsFile is an optional YAML catalog replacing the built-in feed list.
	FeedsFile string
	// Timeout bounds a single feed request. Zero means no timeout.
	Timeout time.Duration
	// UserAgent is sent with every feed request.
	UserAgent string
}

// LoadIngestConfig reads INGEST_ENABLED, FEEDS_FILE, FEED_TIMEOUT and FEED_USER_AGENT.
func LoadIngestConfig(env *Env) IngestConfig {
	return IngestConfig{
		Enabled:   env.Bool("INGEST_ENABLED", true),
		FeedsFile: env.String("FEEDS_FILE", ""),
		Timeout:   env.Duration("FEED_TIMEOUT", time.Minute),
		UserAgent: env.String("FEED_USER_AGENT", "footballdb/1.0"),
	}
}

// Validate validates ingestion configuration.
func (c IngestConfig) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("FEED_TIMEOUT must not be negative, got %s", c.Timeout)
	}
	return nil
}
