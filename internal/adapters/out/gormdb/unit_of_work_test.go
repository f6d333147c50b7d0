package gormdb_test

import (
	"testing"
	"time"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/adapters/out/gormdb/gormtest"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCustomer(t *testing.T, name string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, customer.Facebook, "fb/"+name, nil, nil, time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestUnitOfWorkFactory_CreatesIndependentInstances(t *testing.T) {
	factory := gormdb.NewGormUnitOfWorkFactory(gormtest.Open(t))

	uow1 := factory.Create()
	uow2 := factory.Create()
	assert.NotSame(t, uow1, uow2)
	assert.NotNil(t, uow1.OrderRepository())
	assert.NotNil(t, uow1.CustomerRepository())
	assert.NotNil(t, uow1.AddressRepository())
	assert.NotNil(t, uow1.ProductRepository())
	assert.NotNil(t, uow1.SequenceRepository())
}

func TestUnitOfWork_TransactionLifecycle(t *testing.T) {
	ctx := t.Context()
	uow := gormdb.NewGormUnitOfWorkFactory(gormtest.Open(t)).Create()

	require.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "second Begin is a no-op")
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction, "rollback after commit")

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))
}

func TestUnitOfWork_CommitPersists(t *testing.T) {
	ctx := t.Context()
	factory := gormdb.NewGormUnitOfWorkFactory(gormtest.Open(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	stored, err := uow.CustomerRepository().Add(ctx, newCustomer(t, "committed"))
	require.NoError(t, err)

	inside, err := uow.CustomerRepository().Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "committed", inside.Name())
	require.NoError(t, uow.Commit(ctx))

	got, err := factory.Create().CustomerRepository().Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "committed", got.Name())
}

func TestUnitOfWork_RollbackDiscardsAcrossRepositories(t *testing.T) {
	ctx := t.Context()
	factory := gormdb.NewGormUnitOfWorkFactory(gormtest.Open(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	c, err := uow.CustomerRepository().Add(ctx, newCustomer(t, "discarded"))
	require.NoError(t, err)

	a, err := customer.NewAddress(c.ID(), "1 Rama IV", customer.AddressDetails{}, time.Now().UTC())
	require.NoError(t, err)
	a, err = uow.AddressRepository().Add(ctx, a)
	require.NoError(t, err)

	n, err := uow.SequenceRepository().Next(ctx, "202410")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, uow.Rollback(ctx))

	check := factory.Create()
	_, err = check.CustomerRepository().Get(ctx, c.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	_, err = check.AddressRepository().Get(ctx, a.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.NoError(t, check.Begin(ctx))
	n, err = check.SequenceRepository().Next(ctx, "202410")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "a rolled back number is handed out again")
	require.NoError(t, check.Commit(ctx))
}

func TestOpen(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		_, err := gormdb.Open(gormdb.Options{Driver: "oracle"}, zap.NewNop())
		require.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("sqlite with pool settings", func(t *testing.T) {
		db, err := gormdb.Open(gormdb.Options{
			Driver: "SQLite",
			DSN:    gormtest.DSN(t),
			Pool:   gormdb.PoolConfig{MaxOpenConns: 4, MaxIdleConns: 2, ConnMaxLifetimeSeconds: 60},
		}, nil)
		require.NoError(t, err)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		t.Cleanup(func() { _ = sqlDB.Close() })
		assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
		require.NoError(t, sqlDB.PingContext(t.Context()))
	})
}

func TestNormalizeDriver(t *testing.T) {
	tests := map[string]string{
		"":           gormdb.DriverSQLite,
		"sqlite3":    gormdb.DriverSQLite,
		"PostgreSQL": gormdb.DriverPostgres,
		"pg":         gormdb.DriverPostgres,
		" mysql ":    gormdb.DriverMySQL,
	}
	for in, want := range tests {
		assert.Equal(t, want, gormdb.NormalizeDriver(in), in)
	}
}
