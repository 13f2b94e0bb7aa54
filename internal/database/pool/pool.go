// Package pool sizes the connection pool behind the store.
package pool

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/festy23/footballdb/internal/database/config"
)

// Config holds database/sql pool limits. Zero durations never expire a connection.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns the pool configuration for a postgres server.
func DefaultPoolConfig() Config {
	return Config{
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

// SQLitePoolConfig returns a single never-expiring connection.
// An in-memory sqlite database lives exactly as long as its connection.
func SQLitePoolConfig() Config {
	return Config{MaxOpenConns: 1, MaxIdleConns: 1}
}

// ForDriver returns the pool configuration matching a store driver.
func ForDriver(driver string) Config {
	if driver == config.DriverSQLite {
		return SQLitePoolConfig()
	}
	return DefaultPoolConfig()
}

// Validate rejects limits database/sql would silently reinterpret.
func (c Config) Validate() error {
	switch {
	case c.MaxOpenConns <= 0:
		return fmt.Errorf("pool: MaxOpenConns must be positive, got %d", c.MaxOpenConns)
	case c.MaxIdleConns < 0:
		return fmt.Errorf("pool: MaxIdleConns must not be negative, got %d", c.MaxIdleConns)
	case c.MaxIdleConns > c.MaxOpenConns:
		return fmt.Errorf("pool: MaxIdleConns (%d) exceeds MaxOpenConns (%d)", c.MaxIdleConns, c.MaxOpenConns)
	case c.ConnMaxLifetime < 0 || c.ConnMaxIdleTime < 0:
		return fmt.Errorf("pool: connection lifetimes must not be negative")
	}
	return nil
}

// Apply validates c and sets it on db.
func (c Config) Apply(db *sql.DB) error {
	if err := c.Validate(); err != nil {
		return err
	}
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.ConnMaxIdleTime)
	return nil
}
