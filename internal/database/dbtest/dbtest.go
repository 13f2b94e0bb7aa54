// Package dbtest opens migrated in-memory stores for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/festy23/footballdb/internal/database/config"
	"github.com/festy23/footballdb/internal/database/database"
	"github.com/festy23/footballdb/internal/database/migrate"
	"github.com/festy23/footballdb/internal/database/pool"
)

// New returns an in-memory sqlite store with the football schema and foreign keys enforced.
// The store is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.Config{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	conn, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, pool.SQLitePoolConfig().Apply(conn))
	require.NoError(t, migrate.Migrate(db, config.DriverSQLite))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Exec runs raw statements, failing the test on the first error.
func Exec(t testing.TB, db *gorm.DB, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}
}
