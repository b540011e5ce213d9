package handler

import (
	"net/http"
	"strings"
	"time"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/domain/entity"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// warehouseRequest is the body of warehouse create and update. Occupancy and
// tallies are only honoured on create.
type warehouseRequest struct {
	ID                string                   `json:"id" validate:"max=64"`
	Name              string                   `json:"name" validate:"max=200"`
	Location          string                   `json:"location" validate:"max=200"`
	Capacity          int                      `json:"capacity"`
	CurrentOccupancy  int                      `json:"currentOccupancy"`
	Manager           *entity.WarehouseManager `json:"manager"`
	Status            string                   `json:"status"`
	Products          []entity.StockTally      `json:"products"`
	LastInventoryDate *time.Time               `json:"lastInventoryDate"`
}

func (r warehouseRequest) toEntity(id string) entity.Warehouse {
	return entity.Warehouse{
		ID:                id,
		Name:              strings.TrimSpace(r.Name),
		Location:          r.Location,
		Capacity:          r.Capacity,
		CurrentOccupancy:  r.CurrentOccupancy,
		Manager:           r.Manager,
		Status:            entity.WarehouseStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		Products:          r.Products,
		LastInventoryDate: r.LastInventoryDate,
	}
}

// WarehouseHandler serves warehouses and their occupancy reports.
type WarehouseHandler struct {
	dispatcher usecase.Dispatcher
	reports    usecase.ReportUsecase
}

// NewWarehouseHandler is the constructor for WarehouseHandler, injected by Fx.
func NewWarehouseHandler(dispatcher usecase.Dispatcher, reports usecase.ReportUsecase) *WarehouseHandler {
	return &WarehouseHandler{dispatcher: dispatcher, reports: reports}
}

// List returns every warehouse.
func (h *WarehouseHandler) List(c echo.Context) error {
	warehouses, err := h.reports.ListWarehouses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, warehouses)
}

// Get returns one warehouse.
func (h *WarehouseHandler) Get(c echo.Context) error {
	w, err := h.reports.GetWarehouse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, w)
}

// Report returns the occupancy report of one warehouse.
func (h *WarehouseHandler) Report(c echo.Context) error {
	r, err := h.reports.WarehouseReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, r)
}

// Create adds a warehouse.
func (h *WarehouseHandler) Create(c echo.Context) error {
	var req warehouseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid warehouse input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := dispatch(c, h.dispatcher, usecase.AddWarehouse{Warehouse: req.toEntity(strings.TrimSpace(req.ID))})
	if err != nil {
		return errors.WithStack(err)
	}

	w, _ := result.Store.GetWarehouse(result.AffectedID)

	return versioned(c, http.StatusCreated, w, result.Version)
}

// Update replaces a warehouse's descriptive fields and capacity.
func (h *WarehouseHandler) Update(c echo.Context) error {
	var req warehouseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid warehouse input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := dispatch(c, h.dispatcher, usecase.UpdateWarehouse{Warehouse: req.toEntity(c.Param("id"))})
	if err != nil {
		return errors.WithStack(err)
	}

	w, _ := result.Store.GetWarehouse(result.AffectedID)

	return versioned(c, http.StatusOK, w, result.Version)
}

// Delete removes a warehouse.
func (h *WarehouseHandler) Delete(c echo.Context) error {
	result, err := dispatch(c, h.dispatcher, usecase.DeleteWarehouse{ID: c.Param("id")})
	if err != nil {
		return errors.WithStack(err)
	}

	return versioned(c, http.StatusOK, map[string]string{"id": result.AffectedID}, result.Version)
}
