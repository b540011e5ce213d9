package impl

import (
	"context"
	"time"

	"warehouse/config"
	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/report"
	"warehouse/internal/usecase"

	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface over the
// dispatcher's current snapshot.
type reportService struct {
	dispatcher usecase.Dispatcher
	loc        *time.Location
	recentN    int
	now        func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	Dispatcher usecase.Dispatcher
	Config     *config.Config
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) (usecase.ReportUsecase, error) {
	loc, err := params.Config.Ledger.Location()
	if err != nil {
		return nil, err
	}

	recentN := 5
	if params.Config.Ledger != nil && params.Config.Ledger.RecentTransactions > 0 {
		recentN = params.Config.Ledger.RecentTransactions
	}

	return &reportService{
		dispatcher: params.Dispatcher,
		loc:        loc,
		recentN:    recentN,
		now:        time.Now,
	}, nil
}

// Dashboard computes today's stats in the configured timezone.
func (srv *reportService) Dashboard(_ context.Context) (report.DashboardStats, error) {
	return report.Dashboard(srv.dispatcher.Snapshot().Store, srv.now(), srv.loc), nil
}

// LowStock lists products at or below their minimum.
func (srv *reportService) LowStock(_ context.Context) ([]entity.Product, error) {
	return report.LowStockList(srv.dispatcher.Snapshot().Store), nil
}

// RecentTransactions returns the newest n entries. A non-positive n uses the configured default.
func (srv *reportService) RecentTransactions(_ context.Context, n int) ([]entity.Transaction, error) {
	if n <= 0 {
		n = srv.recentN
	}

	return report.RecentTransactions(srv.dispatcher.Snapshot().Store, n), nil
}

// ListTransactions filters, sorts and paginates the log. Without a sort key
// the newest entries come first.
func (srv *reportService) ListTransactions(_ context.Context, input usecase.TransactionListInput) (report.Page[entity.Transaction], error) {
	s := srv.dispatcher.Snapshot().Store
	list := report.FilterTransactions(s.Transactions(), input.Query.Match)

	if input.SortKey == "" {
		list = report.SortTransactions(list, report.SortByDate, report.Descending)
	} else {
		list = report.SortTransactions(list, input.SortKey, input.SortDir)
	}

	return report.Paginate(list, input.PageSize, input.Page), nil
}

// GetTransaction looks an entry up by id.
func (srv *reportService) GetTransaction(_ context.Context, id string) (entity.Transaction, error) {
	tx, ok := srv.dispatcher.Snapshot().Store.GetTransaction(id)
	if !ok {
		return entity.Transaction{}, domainerrors.New(domainerrors.KindTransactionNotFound, "id", id)
	}

	return tx, nil
}

// ListProducts returns the products matching query in store order.
func (srv *reportService) ListProducts(_ context.Context, query report.ProductQuery) ([]entity.Product, error) {
	return srv.dispatcher.Snapshot().Store.ListProducts(query.Match), nil
}

// GetProduct looks a product up by id.
func (srv *reportService) GetProduct(_ context.Context, id string) (entity.Product, error) {
	p, ok := srv.dispatcher.Snapshot().Store.GetProduct(id)
	if !ok {
		return entity.Product{}, domainerrors.New(domainerrors.KindProductNotFound, "id", id)
	}

	return p, nil
}

// ListWarehouses returns every warehouse in store order.
func (srv *reportService) ListWarehouses(_ context.Context) ([]entity.Warehouse, error) {
	return srv.dispatcher.Snapshot().Store.ListWarehouses(nil), nil
}

// GetWarehouse looks a warehouse up by id.
func (srv *reportService) GetWarehouse(_ context.Context, id string) (entity.Warehouse, error) {
	w, ok := srv.dispatcher.Snapshot().Store.GetWarehouse(id)
	if !ok {
		return entity.Warehouse{}, domainerrors.New(domainerrors.KindWarehouseNotFound, "id", id)
	}

	return w, nil
}

// WarehouseReport builds the occupancy report for one warehouse.
func (srv *reportService) WarehouseReport(_ context.Context, id string) (report.OccupancyReport, error) {
	return report.WarehouseOccupancy(srv.dispatcher.Snapshot().Store, id, srv.now(), srv.recentN)
}

// Valuation values the stock on hand.
func (srv *reportService) Valuation(_ context.Context) (report.Valuation, error) {
	return report.InventoryValuation(srv.dispatcher.Snapshot().Store), nil
}
