// Package database opens and manages the relational store.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/festy23/footballdb/internal/database/config"
	"github.com/festy23/footballdb/internal/database/pool"
	"github.com/festy23/footballdb/pkg/retry"
)

var errNilDB = errors.New("database connection is nil")

// Connect opens the store, retrying transient failures until ctx ends,
// and sizes the pool for the driver.
func Connect(ctx context.Context, cfg config.Config, retryCfg retry.Config) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// gorm pings on open, so an unreachable server fails here and is retried.
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return Open(cfg)
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	conn, err := sqlDB(db)
	if err == nil {
		err = pool.ForDriver(cfg.Driver).Apply(conn)
	}
	if err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}
	return db, nil
}

// Open makes a single connection attempt without retries or pool setup.
// Constraint errors are translated to gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dsn := config.BuildDSN(cfg); cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// HealthCheck pings the store.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	conn, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases every pooled connection. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	conn, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func sqlDB(db *gorm.DB) (*sql.DB, error) {
	if db == nil {
		return nil, errNilDB
	}
	conn, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return conn, nil
}
