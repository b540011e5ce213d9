package handler

import (
	"net/http"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness together with the inventory version.
type HealthHandler struct {
	dispatcher usecase.Dispatcher
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(dispatcher usecase.Dispatcher) *HealthHandler {
	return &HealthHandler{dispatcher: dispatcher}
}

// Check answers 200 while the service is up.
func (h *HealthHandler) Check(c echo.Context) error {
	snap := h.dispatcher.Snapshot()

	return response.Success(c, http.StatusOK, map[string]any{
		"status":       "ok",
		"version":      snap.Version,
		"products":     snap.Store.ProductCount(),
		"transactions": snap.Store.TransactionCount(),
	})
}
