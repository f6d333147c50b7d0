package http

import (
	"fmt"
	"strconv"
	"strings"

	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errInvalidPayload
	}
	return nil
}

func pathID(c echo.Context, param string) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a positive id", raw))
	}
	return id, nil
}

// queryInt returns 0 for a missing or malformed value, which the queries
// treat as "use the default".
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil {
		return 0
	}
	return n
}

func queryBool(c echo.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.QueryParam(name))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
