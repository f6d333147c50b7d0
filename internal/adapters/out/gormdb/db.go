// Package gormdb implements the persistence ports on top of GORM.
//
// One code path serves three engines: SQLite (the default, a single file next
// to the binary), PostgreSQL and MySQL. Mutations go through GormUnitOfWork,
// which binds every repository to the same transaction.
//
// Basic transaction management:
//
//	factory := gormdb.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	number, err := uow.SequenceRepository().Next(ctx, kernel.PeriodOf(time.Now()))
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package gormdb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DefaultSQLiteDSN enables foreign keys, waits on a locked database instead of
// failing, and starts every transaction as a writer so read-then-write
// sequences such as the order counter cannot interleave.
const DefaultSQLiteDSN = "file:orderdesk.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"

// PoolConfig tunes the database/sql connection pool. Zero values keep the
// driver defaults.
type PoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// Options describes how to reach the database.
type Options struct {
	Driver string
	DSN    string
	Pool   PoolConfig
	// SlowThreshold marks queries logged as slow. Defaults to 200ms.
	SlowThreshold time.Duration
}

// Open connects with the configured driver and applies pool settings. SQL
// logging goes to log at warn level: slow queries and errors only.
func Open(opts Options, log *zap.Logger) (*gorm.DB, error) {
	driver := NormalizeDriver(opts.Driver)

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dsn := opts.DSN
		if strings.TrimSpace(dsn) == "" {
			dsn = DefaultSQLiteDSN
		}
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	case DriverMySQL:
		dialector = mysql.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  newGormLogger(log, opts.SlowThreshold),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyPool(sqlDB, opts.Pool)

	return db, nil
}

// NormalizeDriver lower-cases the driver name and maps aliases; empty means sqlite.
func NormalizeDriver(driver string) string {
	switch normalized := strings.ToLower(strings.TrimSpace(driver)); normalized {
	case "", "sqlite", "sqlite3":
		return DriverSQLite
	case "postgres", "postgresql", "pg":
		return DriverPostgres
	default:
		return normalized
	}
}

func applyPool(sqlDB *sql.DB, pool PoolConfig) {
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

func newGormLogger(log *zap.Logger, slowThreshold time.Duration) gormlogger.Interface {
	if log == nil {
		log = zap.NewNop()
	}
	if slowThreshold <= 0 {
		slowThreshold = 200 * time.Millisecond
	}
	return gormlogger.New(zap.NewStdLog(log.Named("gorm")), gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
