package middleware

import (
	"log/slog"
	"net/http"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/delivery/api/validator"
	deliverycontext "warehouse/internal/delivery/context"
	"warehouse/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorDetails is one entry of the error details list. Ledger rejections
// fill Detail, validation failures fill Rule and Param.
type ErrorDetails struct {
	Field  string `json:"field,omitempty"`
	Rule   string `json:"rule,omitempty"`
	Param  string `json:"param,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsAppError(err); ok {
		var details any
		if field := errors.Field(err); field != "" || appErr.Details() != "" {
			details = []ErrorDetails{{Field: field, Detail: appErr.Details()}}
		}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	if fields, ok := validator.FieldErrors(err); ok {
		details := make([]ErrorDetails, 0, len(fields))
		for _, f := range fields {
			details = append(details, ErrorDetails{Field: f.Field, Rule: f.Rule, Param: f.Param})
		}
		_ = response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logUnhandled(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
