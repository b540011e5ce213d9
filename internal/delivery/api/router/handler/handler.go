// Package handler contains the HTTP handlers for the inventory API.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// headerIfMatch carries the inventory version a client last read. A write
// that sends it only succeeds if nothing changed in between.
const headerIfMatch = "If-Match"

// dispatch sends cmd, honouring an If-Match version when the client sent one.
func dispatch(c echo.Context, d usecase.Dispatcher, cmd usecase.Command) (usecase.Result, error) {
	ctx := c.Request().Context()

	raw := strings.Trim(strings.TrimSpace(c.Request().Header.Get(headerIfMatch)), `"`)
	if raw == "" {
		return d.Dispatch(ctx, cmd)
	}

	expected, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return usecase.Result{}, echo.NewHTTPError(http.StatusBadRequest, "If-Match must be an inventory version")
	}

	return d.DispatchAt(ctx, expected, cmd)
}

// versioned answers with data and the inventory version it reflects.
func versioned(c echo.Context, status int, data any, version int64) error {
	c.Response().Header().Set("ETag", strconv.Quote(strconv.FormatInt(version, 10)))

	return response.Versioned(c, status, data, version)
}
