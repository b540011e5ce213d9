package report

import (
	"math"
	"time"

	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/store"
)

// OccupancyReport summarizes what one warehouse holds.
type OccupancyReport struct {
	Warehouse          entity.Warehouse     `json:"warehouse"`
	TotalProducts      int                  `json:"totalProducts"`
	UniqueProductTypes int                  `json:"uniqueProductTypes"`
	MostStoredProduct  *entity.StockTally   `json:"mostStoredProduct,omitempty"`
	OccupancyRate      int                  `json:"occupancyRate"` // Percent, rounded.
	AvailableCapacity  int                  `json:"availableCapacity"`
	RecentTransactions []entity.Transaction `json:"recentTransactions"`
	GeneratedAt        time.Time            `json:"generatedAt"`
}

// WarehouseOccupancy builds the report for one warehouse. recentN bounds the
// number of entries touching the warehouse that are included, newest first.
// Tallies of deleted products are left out of the totals.
func WarehouseOccupancy(s *store.Store, warehouseID string, now time.Time, recentN int) (OccupancyReport, error) {
	w, ok := s.GetWarehouse(warehouseID)
	if !ok {
		return OccupancyReport{}, domainerrors.New(domainerrors.KindWarehouseNotFound, "id", warehouseID)
	}

	r := OccupancyReport{
		Warehouse:         w,
		OccupancyRate:     OccupancyRate(w),
		AvailableCapacity: max(w.Capacity-w.CurrentOccupancy, 0),
		GeneratedAt:       now,
	}

	for i, t := range w.Products {
		if t.Quantity <= 0 {
			continue
		}
		if _, ok := s.GetProduct(t.ProductID); !ok {
			continue
		}
		r.TotalProducts += t.Quantity
		r.UniqueProductTypes++
		// Strict comparison keeps the first of equal maxima.
		if r.MostStoredProduct == nil || t.Quantity > r.MostStoredProduct.Quantity {
			r.MostStoredProduct = &w.Products[i]
		}
	}

	touching := FilterTransactions(s.Transactions(), func(t entity.Transaction) bool {
		return t.TouchesWarehouse(warehouseID)
	})
	r.RecentTransactions = newestFirst(touching, recentN)

	return r, nil
}

// OccupancyRate is round(occupancy / capacity * 100). A warehouse without
// capacity reports 0.
func OccupancyRate(w entity.Warehouse) int {
	if w.Capacity <= 0 {
		return 0
	}

	return int(math.Round(float64(w.CurrentOccupancy) / float64(w.Capacity) * 100))
}
