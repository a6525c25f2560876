package middleware

import (
	"errors"
	"net/http"
	"seatflow/domain"
	"seatflow/pkg/logger"

	jsonres "seatflow/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler. Handlers normally answer
// errors themselves; this catches whatever escapes (panics recovered
// by echo, unhandled routes, stray returned errors).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSeatNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrSeatUnavailable),
		errors.Is(err, domain.ErrTimeConflict),
		errors.Is(err, domain.ErrEmailTaken):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidRating):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		code = http.StatusUnauthorized
		message = err.Error()
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
