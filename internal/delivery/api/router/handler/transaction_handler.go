package handler

import (
	"net/http"
	"strings"
	"time"

	"warehouse/config"
	"warehouse/internal/delivery/api/response"
	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/report"
	"warehouse/internal/errors"
	"warehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	dateLayout      = "2006-01-02"
)

// transactionRequest is a stock movement. Type is kept as text so an unknown
// value reaches the ledger and is rejected with its own error kind.
type transactionRequest struct {
	ProductID              string `json:"productId"`
	Type                   string `json:"type"`
	Quantity               int    `json:"quantity"`
	Supplier               string `json:"supplier" validate:"max=200"`
	Customer               string `json:"customer" validate:"max=200"`
	Destination            string `json:"destination" validate:"max=200"`
	Department             string `json:"department" validate:"max=200"`
	SourceWarehouseID      string `json:"sourceWarehouseId"`
	DestinationWarehouseID string `json:"destinationWarehouseId"`
	Notes                  string `json:"notes" validate:"max=2000"`
}

func (r transactionRequest) toIntent() entity.TransactionIntent {
	txType, ok := entity.ParseTransactionType(r.Type)
	if !ok {
		txType = entity.TransactionType(r.Type)
	}

	return entity.TransactionIntent{
		ProductID:              strings.TrimSpace(r.ProductID),
		Type:                   txType,
		Quantity:               r.Quantity,
		Supplier:               r.Supplier,
		Customer:               r.Customer,
		Destination:            r.Destination,
		Department:             r.Department,
		SourceWarehouseID:      strings.TrimSpace(r.SourceWarehouseID),
		DestinationWarehouseID: strings.TrimSpace(r.DestinationWarehouseID),
		Notes:                  r.Notes,
	}
}

type transactionListRequest struct {
	Type      string `query:"type"`
	ProductID string `query:"productId"`
	Search    string `query:"search"`
	From      string `query:"from"`
	To        string `query:"to"`
	Sort      string `query:"sort"`
	Order     string `query:"order"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"pageSize" validate:"omitempty,min=1,max=200"`
}

type recentRequest struct {
	N int `query:"n" validate:"omitempty,min=1,max=100"`
}

// TransactionHandler serves the transaction log and records movements.
type TransactionHandler struct {
	dispatcher usecase.Dispatcher
	reports    usecase.ReportUsecase
	loc        *time.Location
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(dispatcher usecase.Dispatcher, reports usecase.ReportUsecase, cfg *config.Config) (*TransactionHandler, error) {
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return nil, err
	}

	return &TransactionHandler{dispatcher: dispatcher, reports: reports, loc: loc}, nil
}

// Create records a movement through the ledger.
func (h *TransactionHandler) Create(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := dispatch(c, h.dispatcher, usecase.AddTransaction{Intent: req.toIntent()})
	if err != nil {
		return errors.WithStack(err)
	}

	tx, _ := result.Store.GetTransaction(result.AffectedID)

	return versioned(c, http.StatusCreated, tx, result.Version)
}

// List returns one page of the filtered, sorted log.
func (h *TransactionHandler) List(c echo.Context) error {
	var req transactionListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid transaction filter")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input, err := h.listInput(req)
	if err != nil {
		return err
	}

	page, err := h.reports.ListTransactions(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *TransactionHandler) listInput(req transactionListRequest) (usecase.TransactionListInput, error) {
	input := usecase.TransactionListInput{
		Query: report.TransactionQuery{
			ProductID: strings.TrimSpace(req.ProductID),
			Search:    strings.TrimSpace(req.Search),
		},
		Page:     max(req.Page, 1),
		PageSize: req.PageSize,
	}
	if input.PageSize == 0 {
		input.PageSize = defaultPageSize
	}

	if req.Type != "" {
		txType, ok := entity.ParseTransactionType(req.Type)
		if !ok {
			return input, domainerrors.New(domainerrors.KindInvalidTransactionType, "type", req.Type)
		}
		input.Query.Type = txType
	}

	if req.Sort != "" {
		key, ok := report.ParseSortKey(req.Sort)
		if !ok {
			return input, echo.NewHTTPError(http.StatusBadRequest, "unknown sort key "+req.Sort)
		}
		input.SortKey = key
		input.SortDir = report.ParseDirection(req.Order)
	}

	var err error
	if input.Query.From, err = h.parseBound(req.From, false); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "from must be a date or RFC 3339 time")
	}
	if input.Query.To, err = h.parseBound(req.To, true); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "to must be a date or RFC 3339 time")
	}

	return input, nil
}

// parseBound reads an RFC 3339 time or a calendar date in the ledger zone.
// A date used as an upper bound covers the whole day.
func (h *TransactionHandler) parseBound(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	day, err := time.ParseInLocation(dateLayout, raw, h.loc)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return &day, nil
}

// Get returns one log entry.
func (h *TransactionHandler) Get(c echo.Context) error {
	tx, err := h.reports.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx)
}

// Recent returns the newest n entries.
func (h *TransactionHandler) Recent(c echo.Context) error {
	var req recentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid count")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	txs, err := h.reports.RecentTransactions(c.Request().Context(), req.N)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, txs)
}
