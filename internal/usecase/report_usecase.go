package usecase

import (
	"context"

	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/report"
)

// TransactionListInput selects one page of the transaction log.
type TransactionListInput struct {
	Query    report.TransactionQuery
	SortKey  report.SortKey
	SortDir  report.Direction
	Page     int
	PageSize int
}

// ReportUsecase serves read-only views of the current snapshot.
type ReportUsecase interface {
	Dashboard(ctx context.Context) (report.DashboardStats, error)
	LowStock(ctx context.Context) ([]entity.Product, error)
	RecentTransactions(ctx context.Context, n int) ([]entity.Transaction, error)
	ListTransactions(ctx context.Context, input TransactionListInput) (report.Page[entity.Transaction], error)
	GetTransaction(ctx context.Context, id string) (entity.Transaction, error)
	ListProducts(ctx context.Context, query report.ProductQuery) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (entity.Product, error)
	ListWarehouses(ctx context.Context) ([]entity.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (entity.Warehouse, error)
	WarehouseReport(ctx context.Context, id string) (report.OccupancyReport, error)
	Valuation(ctx context.Context) (report.Valuation, error)
}
