package handler

import (
	"net/http"
	"strings"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/report"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// productRequest is the body of product create and update. CurrentStock is
// only honoured on create; afterwards the ledger owns it.
type productRequest struct {
	ID           string               `json:"id" validate:"max=64"`
	Name         string               `json:"name" validate:"max=200"`
	Code         string               `json:"code" validate:"max=64"`
	Category     string               `json:"category" validate:"max=100"`
	CurrentStock int                  `json:"currentStock"`
	MinStock     int                  `json:"minStock"`
	Location     string               `json:"location" validate:"max=200"`
	Supplier     string               `json:"supplier" validate:"max=200"`
	Price        *decimal.Decimal     `json:"price"`
	Description  string               `json:"description" validate:"max=2000"`
	Image        *entity.ProductImage `json:"image"`
	Barcode      string               `json:"barcode" validate:"max=64"`
}

func (r productRequest) toEntity(id string) entity.Product {
	return entity.Product{
		ID:           id,
		Name:         strings.TrimSpace(r.Name),
		Code:         strings.TrimSpace(r.Code),
		Category:     strings.TrimSpace(r.Category),
		CurrentStock: r.CurrentStock,
		MinStock:     r.MinStock,
		Location:     r.Location,
		Supplier:     r.Supplier,
		Price:        r.Price,
		Description:  r.Description,
		Image:        r.Image,
		Barcode:      r.Barcode,
	}
}

type productListRequest struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	LowStock bool   `query:"lowStock"`
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	dispatcher usecase.Dispatcher
	reports    usecase.ReportUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(dispatcher usecase.Dispatcher, reports usecase.ReportUsecase) *ProductHandler {
	return &ProductHandler{dispatcher: dispatcher, reports: reports}
}

// List returns the products matching the category, search and lowStock filters.
func (h *ProductHandler) List(c echo.Context) error {
	var req productListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product filter")
	}

	products, err := h.reports.ListProducts(c.Request().Context(), report.ProductQuery{
		Category:     strings.TrimSpace(req.Category),
		Search:       strings.TrimSpace(req.Search),
		LowStockOnly: req.LowStock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// LowStock returns every product at or below its minimum stock.
func (h *ProductHandler) LowStock(c echo.Context) error {
	products, err := h.reports.LowStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Get returns one product.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.reports.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := dispatch(c, h.dispatcher, usecase.AddProduct{Product: req.toEntity(strings.TrimSpace(req.ID))})
	if err != nil {
		return errors.WithStack(err)
	}

	product, _ := result.Store.GetProduct(result.AffectedID)

	return versioned(c, http.StatusCreated, product, result.Version)
}

// Update replaces a product's catalog fields.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := dispatch(c, h.dispatcher, usecase.UpdateProduct{Product: req.toEntity(c.Param("id"))})
	if err != nil {
		return errors.WithStack(err)
	}

	product, _ := result.Store.GetProduct(result.AffectedID)

	return versioned(c, http.StatusOK, product, result.Version)
}

// Delete removes a product. Its transactions stay in the log.
func (h *ProductHandler) Delete(c echo.Context) error {
	result, err := dispatch(c, h.dispatcher, usecase.DeleteProduct{ID: c.Param("id")})
	if err != nil {
		return errors.WithStack(err)
	}

	return versioned(c, http.StatusOK, map[string]string{"id": result.AffectedID}, result.Version)
}
