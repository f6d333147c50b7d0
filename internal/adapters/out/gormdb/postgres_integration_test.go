//go:build integration

package gormdb_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/adapters/out/gormdb/migrations"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostgresIntegrationTestSuite runs the migrations and the unit of work
// against a real PostgreSQL server.
type PostgresIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (s *PostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gormdb.Open(gormdb.Options{Driver: gormdb.DriverPostgres, DSN: dsn}, zap.NewNop())
	s.Require().NoError(err)
	s.db = db

	_, err = migrations.NewEngine(db, migrations.All(), zap.NewNop()).ApplyPending(ctx)
	s.Require().NoError(err)

	s.factory = gormdb.NewGormUnitOfWorkFactory(db)
}

func (s *PostgresIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE order_items, orders, addresses, customers, products, order_sequences RESTART IDENTITY CASCADE",
	).Error)
}

func (s *PostgresIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresIntegrationTestSuite) TestMigrationsAreIdempotent() {
	engine := migrations.NewEngine(s.db, migrations.All(), zap.NewNop())

	applied, err := engine.ApplyPending(s.T().Context())
	s.Require().NoError(err)
	s.Empty(applied)

	state, err := engine.State(s.T().Context())
	s.Require().NoError(err)
	s.Equal([]string{"001_init_core_tables", "002_delivery_queue_index"}, state.Applied)
	s.Empty(state.Pending)
}

func (s *PostgresIntegrationTestSuite) TestSequenceUnderConcurrency() {
	ctx := s.T().Context()

	const callers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []int64
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := s.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				s.Fail(err.Error())
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			n, err := uow.SequenceRepository().Next(ctx, kernel.Period("202410"))
			if err != nil {
				s.Fail(err.Error())
				return
			}
			if err := uow.Commit(ctx); err != nil {
				s.Fail(err.Error())
				return
			}

			mu.Lock()
			numbers = append(numbers, n)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	s.Equal([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, numbers)
}

func (s *PostgresIntegrationTestSuite) TestOrderRoundTrip() {
	ctx := s.T().Context()
	now := time.Date(2024, 10, 3, 12, 0, 0, 0, time.UTC)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	c, err := customer.NewCustomer("Mali", customer.Phone, "0811111111", nil, nil, now)
	s.Require().NoError(err)
	c, err = uow.CustomerRepository().Add(ctx, c)
	s.Require().NoError(err)

	a, err := customer.NewAddress(c.ID(), "7 Ratchada", customer.AddressDetails{}, now)
	s.Require().NoError(err)
	a, err = uow.AddressRepository().Add(ctx, a)
	s.Require().NoError(err)

	p, err := product.NewProduct("Khao Soi", nil, kernel.MoneyFromInt(85), product.Active, nil, now)
	s.Require().NoError(err)
	p, err = uow.ProductRepository().Add(ctx, p)
	s.Require().NoError(err)

	n, err := uow.SequenceRepository().Next(ctx, kernel.PeriodOf(now))
	s.Require().NoError(err)
	code, err := order.NewCode(n)
	s.Require().NoError(err)

	o, err := order.NewOrder(code, c.ID(), a.ID(), order.Details{}, now)
	s.Require().NoError(err)
	item, err := order.NewItem(p.ID(), 3, p.EffectivePrice(), kernel.MoneyFromInt(5))
	s.Require().NoError(err)
	s.Require().NoError(o.AddItem(item))

	stored, err := uow.OrderRepository().Add(ctx, o)
	s.Require().NoError(err)
	s.Require().NoError(uow.Commit(ctx))

	got, err := s.factory.Create().OrderRepository().Get(ctx, stored.ID())
	s.Require().NoError(err)
	s.Equal(order.Code("N-0001"), got.Code())
	s.Require().Len(got.Items(), 1)
	s.Equal("240.00", got.Items()[0].LineTotal().String())
}

func TestPostgresIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationTestSuite))
}
