package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"
)

type createProductRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	BasePrice   kernel.Money   `json:"base_price"`
	Status      product.Status `json:"status"`
	PromoPrice  *kernel.Money  `json:"promo_price"`
}

// updateProductRequest mirrors product.Patch field for field.
type updateProductRequest struct {
	Name        nullable.Nullable[string]         `json:"name"`
	Description nullable.Nullable[string]         `json:"description"`
	BasePrice   nullable.Nullable[kernel.Money]   `json:"base_price"`
	Status      nullable.Nullable[product.Status] `json:"status"`
	PromoPrice  nullable.Nullable[kernel.Money]   `json:"promo_price"`
}

// ListProducts handles GET /api/products?status=active,promotion&q=.
func (s *Server) ListProducts(c echo.Context) error {
	query, err := queries.NewListProductsQuery(c.QueryParams()["status"], c.QueryParam("q"))
	if err != nil {
		return err
	}
	products, err := s.h.Products.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"products": products})
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateProductCommand(req.Name, req.Description, req.BasePrice, req.Status, req.PromoPrice)
	if err != nil {
		return err
	}
	created, err := s.h.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"product": productView(created)})
}

// UpdateProduct handles PATCH /api/products/:id.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "product_id")
	if err != nil {
		return err
	}
	var req updateProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateProductCommand(id, product.Patch(req))
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"product": productView(updated)})
}
