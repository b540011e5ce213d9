package handler

import (
	"net/http"

	"warehouse/internal/delivery/api/response"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the dashboard and inventory reports.
type ReportHandler struct {
	reports usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(reports usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard returns today's headline numbers.
func (h *ReportHandler) Dashboard(c echo.Context) error {
	stats, err := h.reports.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Valuation returns the value of the stock on hand.
func (h *ReportHandler) Valuation(c echo.Context) error {
	v, err := h.reports.Valuation(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, v)
}
