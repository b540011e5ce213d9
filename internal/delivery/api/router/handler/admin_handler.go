package handler

import (
	"net/http"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/domain/entity"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// seedRequest replaces the inventory. An empty body loads the sample data.
type seedRequest struct {
	Products     []entity.Product     `json:"products"`
	Warehouses   []entity.Warehouse   `json:"warehouses"`
	Transactions []entity.Transaction `json:"transactions"`
}

func (r seedRequest) data() *usecase.SeedData {
	if r.Products == nil && r.Warehouses == nil && r.Transactions == nil {
		return nil
	}

	return &usecase.SeedData{Products: r.Products, Warehouses: r.Warehouses, Transactions: r.Transactions}
}

type seedResponse struct {
	Products     int `json:"products"`
	Warehouses   int `json:"warehouses"`
	Transactions int `json:"transactions"`
}

// AdminHandler handles maintenance operations on the whole inventory.
type AdminHandler struct {
	dispatcher usecase.Dispatcher
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(dispatcher usecase.Dispatcher) *AdminHandler {
	return &AdminHandler{dispatcher: dispatcher}
}

// Seed replaces every inventory collection.
func (h *AdminHandler) Seed(c echo.Context) error {
	var req seedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid seed data")
	}

	result, err := dispatch(c, h.dispatcher, usecase.LoadInitialData{Data: req.data()})
	if err != nil {
		return errors.WithStack(err)
	}

	return versioned(c, http.StatusOK, seedResponse{
		Products:     result.Store.ProductCount(),
		Warehouses:   len(result.Store.ListWarehouses(nil)),
		Transactions: result.Store.TransactionCount(),
	}, result.Version)
}
