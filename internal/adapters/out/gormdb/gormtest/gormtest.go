// Package gormtest opens throwaway SQLite databases for tests.
package gormtest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/adapters/out/gormdb/migrations"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DSN returns a SQLite DSN for a fresh file under t's temp dir, with the same
// pragmas as the production default.
func DSN(t testing.TB) string {
	path := filepath.Join(t.TempDir(), "orderdesk_test.db")
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate", filepath.ToSlash(path))
}

// OpenEmpty opens a new SQLite database without any schema.
func OpenEmpty(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gormdb.Open(gormdb.Options{Driver: gormdb.DriverSQLite, DSN: DSN(t)}, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Open opens a new SQLite database with every migration applied.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db := OpenEmpty(t)
	_, err := migrations.NewEngine(db, migrations.All(), zap.NewNop()).ApplyPending(context.Background())
	require.NoError(t, err)
	return db
}
