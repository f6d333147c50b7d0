package cmd

import (
	"context"
	"time"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/adapters/out/gormdb/migrations"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *gormdb.GormUnitOfWorkFactory
	log        *zap.Logger
	startedAt  time.Time
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log *zap.Logger) CompositionRoot {
	if log == nil {
		log = zap.NewNop()
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: gormdb.NewGormUnitOfWorkFactory(gormDB),
		log:        log,
		startedAt:  time.Now(),
	}
}

func (c *CompositionRoot) CreateMigrationEngine() *migrations.Engine {
	return migrations.NewEngine(c.gormDB, migrations.All(), c.log.Named("migrations"))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.log.Named("orders"))
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.log.Named("orders"))
}

func (c *CompositionRoot) CreateMoveDeliveryOrderCommandHandler() commands.MoveDeliveryOrderCommandHandler {
	updater := c.CreateUpdateOrderCommandHandler()
	return commands.NewMoveDeliveryOrderCommandHandler(&updater, c.log.Named("delivery_queue"))
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() commands.AddAddressCommandHandler {
	return commands.NewAddAddressCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAddressCommandHandler() commands.DeleteAddressCommandHandler {
	return commands.NewDeleteAddressCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCustomerQueryHandler() queries.CustomerQueryHandler {
	return queries.NewCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLookupOrderStatusQueryHandler() queries.LookupOrderStatusQueryHandler {
	return queries.NewLookupOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHealthQueryHandler() queries.GetHealthQueryHandler {
	engine := c.CreateMigrationEngine()
	return queries.NewGetHealthQueryHandler(c.gormDB, FuncMigrationLedger(func(ctx context.Context) (applied, pending []string, err error) {
		state, err := engine.State(ctx)
		return state.Applied, state.Pending, err
	}), c.cfg.App.Env, c.startedAt)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateCustomer: c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: c.CreateUpdateCustomerCommandHandler(),
		AddAddress:     c.CreateAddAddressCommandHandler(),
		UpdateAddress:  c.CreateUpdateAddressCommandHandler(),
		DeleteAddress:  c.CreateDeleteAddressCommandHandler(),
		CreateProduct:  c.CreateCreateProductCommandHandler(),
		UpdateProduct:  c.CreateUpdateProductCommandHandler(),
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		MoveDelivery:   c.CreateMoveDeliveryOrderCommandHandler(),

		Customers:    c.CreateCustomerQueryHandler(),
		Products:     c.CreateListProductsQueryHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		LookupStatus: c.CreateLookupOrderStatusQueryHandler(),
		Health:       c.CreateGetHealthQueryHandler(),
	}, c.log.Named("api"))
}

// CreateEcho builds the ready-to-start HTTP router.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	return httpin.NewEcho(c.CreateHTTPServer(), c.log)
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

// FuncMigrationLedger adapts a function to queries.MigrationLedger.
type FuncMigrationLedger func(ctx context.Context) (applied, pending []string, err error)

func (f FuncMigrationLedger) MigrationState(ctx context.Context) (applied, pending []string, err error) {
	return f(ctx)
}
