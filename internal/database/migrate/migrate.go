// Package migrate creates the football schema from embedded migrations.
package migrate

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/festy23/footballdb/internal/database/config"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationsDir returns the embedded migrations directory for a driver.
func migrationsDir(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite, config.DriverPostgres:
		return "migrations/" + driver, nil
	default:
		return "", fmt.Errorf("unsupported driver: %s", driver)
	}
}

// Migrations returns the embedded migration files for a driver.
func Migrations(driver string) (fs.FS, error) {
	dir, err := migrationsDir(driver)
	if err != nil {
		return nil, err
	}
	return fs.Sub(migrationsFS, dir)
}

func newMigrate(db *gorm.DB, driver string) (*migrate.Migrate, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	dir, err := migrationsDir(driver)
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	var dbDriver database.Driver
	switch driver {
	case config.DriverPostgres:
		dbDriver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	default:
		dbDriver, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migration driver: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// Migrate applies pending migrations. It does not touch an already current schema.
//
// The migrate instance is never closed: closing it would close the shared sql.DB.
func Migrate(db *gorm.DB, driver string) error {
	m, err := newMigrate(db, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Reset drops every football table and recreates the schema from scratch.
// Existing rows are discarded; there is no data migration path.
func Reset(db *gorm.DB, driver string) error {
	m, err := newMigrate(db, driver)
	if err != nil {
		return err
	}
	// The first up migration drops whatever tables exist, so rewinding the
	// recorded version is enough to rebuild, dirty state included.
	if err := m.Force(database.NilVersion); err != nil {
		return fmt.Errorf("failed to reset migration version: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	return nil
}
