// Package config provides database configuration management.
package config

import (
	"fmt"
	"strings"

	appConfig "github.com/festy23/footballdb/internal/config"
	"github.com/festy23/footballdb/pkg/retry"
)

// Supported store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database connection configuration.
type Config struct {
	// Driver selects the store backend (sqlite, postgres).
	Driver string
	// SQLitePath is the sqlite database file, or ":memory:".
	SQLitePath string

	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// LoadConfig reads the DB_* connection variables.
func LoadConfig(env *appConfig.Env) Config {
	return Config{
		Driver:     strings.ToLower(env.String("DB_DRIVER", DriverSQLite)),
		SQLitePath: env.String("DB_SQLITE_PATH", "footballdb.sqlite"),
		Host:       env.String("DB_HOST", "localhost"),
		User:       env.String("DB_USER", "postgres"),
		Password:   env.String("DB_PASSWORD", "postgres"),
		DBName:     env.String("DB_NAME", "footballdb"),
		Port:       env.String("DB_PORT", "5432"),
		SSLMode:    env.String("DB_SSLMODE", "disable"),
		TimeZone:   env.String("DB_TIMEZONE", "UTC"),
	}
}

// LoadRetryConfig reads the DB_RETRY_* variables over the connect schedule.
func LoadRetryConfig(env *appConfig.Env) retry.Config {
	cfg := retry.ConnectConfig()
	cfg.MaxAttempts = env.Int("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = env.Duration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = env.Duration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	cfg.Multiplier = env.Float("DB_RETRY_MULTIPLIER", cfg.Multiplier)
	return cfg
}

// BuildDSN returns the driver-specific DSN. The sqlite DSN always enables
// foreign key enforcement.
func BuildDSN(cfg Config) string {
	if cfg.Driver != DriverPostgres {
		return cfg.SQLitePath + "?_foreign_keys=on"
	}
	pairs := []string{
		"host=" + cfg.Host,
		"user=" + cfg.User,
		"password=" + cfg.Password,
		"dbname=" + cfg.DBName,
		"port=" + cfg.Port,
		"sslmode=" + cfg.SSLMode,
		"TimeZone=" + cfg.TimeZone,
	}
	return strings.Join(pairs, " ")
}

// Validate checks that the selected driver has what it needs.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		var missing []string
		if c.Host == "" {
			missing = append(missing, "DB_HOST")
		}
		if c.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%s required for the postgres driver", strings.Join(missing, " and "))
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER %q (want sqlite or postgres)", c.Driver)
	}
	return nil
}

// SanitizeError masks the password in connection errors, which drivers
// tend to echo back together with the DSN.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if cfg.Password != "" {
		msg = strings.ReplaceAll(msg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to %s store: %s", cfg.Driver, msg)
}
