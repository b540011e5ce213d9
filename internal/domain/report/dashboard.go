// Package report derives read-only views from a store snapshot. Nothing in
// here mutates the store, and references that no longer resolve are skipped
// rather than treated as failures.
package report

import (
	"time"

	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/store"
)

// DashboardStats is the headline summary shown after login.
type DashboardStats struct {
	TotalProducts    int `json:"totalProducts"`
	TodayIn          int `json:"todayIn"`
	TodayOut         int `json:"todayOut"`
	LowStockProducts int `json:"lowStockProducts"`
}

// Dashboard computes the stats for the calendar day containing today in loc.
// todayIn and todayOut sum quantities, not entry counts.
func Dashboard(s *store.Store, today time.Time, loc *time.Location) DashboardStats {
	if loc == nil {
		loc = time.Local
	}

	stats := DashboardStats{TotalProducts: s.ProductCount()}
	for _, p := range s.ListProducts(nil) {
		if p.IsLowStock() {
			stats.LowStockProducts++
		}
	}

	for _, t := range s.Transactions() {
		if !SameDay(t.Date, today, loc) {
			continue
		}
		switch t.Type {
		case entity.TransactionIn:
			stats.TodayIn += t.Quantity
		case entity.TransactionOut:
			stats.TodayOut += t.Quantity
		}
	}

	return stats
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

// LowStockList returns every product at or below its minimum, in store order.
func LowStockList(s *store.Store) []entity.Product {
	return s.ListProducts(entity.Product.IsLowStock)
}

// RecentTransactions returns the last n entries of the log, newest first.
// A non-positive n yields an empty list.
func RecentTransactions(s *store.Store, n int) []entity.Transaction {
	return newestFirst(s.Transactions(), n)
}

func newestFirst(txs []entity.Transaction, n int) []entity.Transaction {
	if n <= 0 {
		return []entity.Transaction{}
	}
	if n > len(txs) {
		n = len(txs)
	}

	out := make([]entity.Transaction, 0, n)
	for i := len(txs) - 1; i >= len(txs)-n; i-- {
		out = append(out, txs[i])
	}

	return out
}
