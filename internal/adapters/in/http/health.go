package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetHealth handles GET /api/health. A degraded service still answers 200 so
// the body can be inspected.
func (s *Server) GetHealth(c echo.Context) error {
	view, err := s.h.Health.Handle(c.Request().Context(), queries.NewGetHealthQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
