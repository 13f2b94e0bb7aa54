package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is any zap level name (debug, info, warn, error, ...).
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a file path.
	Output string
}

// LoadLoggerConfig reads LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT.
func LoadLoggerConfig(env *Env) LoggerConfig {
	return LoggerConfig{
		Level:  env.String("LOG_LEVEL", "info"),
		Format: env.String("LOG_FORMAT", FormatConsole),
		Output: env.String("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.Format != FormatJSON && c.Format != FormatConsole {
		return fmt.Errorf("invalid LOG_FORMAT %q (want json or console)", c.Format)
	}
	return nil
}

// IsFile reports whether logs go to a file rather than a standard stream.
func (c LoggerConfig) IsFile() bool {
	return c.Output != "" && c.Output != "stdout" && c.Output != "stderr"
}

// Production reports whether the sampled production setup applies:
// JSON output above debug level.
func (c LoggerConfig) Production() bool {
	return c.Format != FormatConsole && c.Level != "debug"
}
