package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var errInvalidPayload = errs.NewValueIsInvalidErrorWithCause("body", errors.New("invalid JSON or request payload"))

// statusOf maps core errors to HTTP statuses. Order matters: an unknown
// product also matches errs.ErrObjectNotFound but is the client's mistake in
// the order payload, and a partially stored queue may wrap any cause.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, commands.ErrQueuePartiallyPersisted):
		return http.StatusInternalServerError
	case errors.Is(err, commands.ErrProductNotFound):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInvalidAssociation),
		errors.Is(err, errs.ErrMissingCancelReason):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusOf(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	case errors.Is(err, commands.ErrQueuePartiallyPersisted):
		message = err.Error() + "; reload the delivery list"
	case status == http.StatusInternalServerError:
		s.log.Error("request_failed",
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
		message = "internal server error"
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, Error{Code: status, Message: message})
	}
	if writeErr != nil {
		s.log.Warn("error_response_failed", zap.Error(writeErr))
	}
}
