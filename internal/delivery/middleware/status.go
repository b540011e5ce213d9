package middleware

import (
	"net/http"

	"warehouse/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusOf predicts the status the error handler will render for err.
func statusOf(err error) int {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
