// Package http exposes the order desk over a JSON REST API built on echo.
// Handlers translate requests into commands and queries and render the
// results; every business rule lives in the core.
package http

import (
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers bundles every use case the API serves.
type Handlers struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	AddAddress     commands.AddAddressCommandHandler
	UpdateAddress  commands.UpdateAddressCommandHandler
	DeleteAddress  commands.DeleteAddressCommandHandler
	CreateProduct  commands.CreateProductCommandHandler
	UpdateProduct  commands.UpdateProductCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	UpdateOrder    commands.UpdateOrderCommandHandler
	MoveDelivery   commands.MoveDeliveryOrderCommandHandler

	Customers    queries.CustomerQueryHandler
	Products     queries.ListProductsQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	ListOrders   queries.ListOrdersQueryHandler
	LookupStatus queries.LookupOrderStatusQueryHandler
	Health       queries.GetHealthQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h   Handlers
	log *zap.Logger
}

// NewServer creates a server for the given use cases.
func NewServer(handlers Handlers, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{h: handlers, log: log}
}

// Register mounts every route under /api.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", s.GetHealth)

	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.GET("/customers/:id/addresses", s.ListAddresses)
	api.POST("/customers/:id/addresses", s.AddAddress)
	api.PATCH("/addresses/:id", s.UpdateAddress)
	api.DELETE("/addresses/:id", s.DeleteAddress)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id", s.UpdateProduct)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.GET("/order-status", s.LookupOrderStatus)
	api.POST("/delivery-queue/move", s.MoveDeliveryOrder)
}
