package report

import (
	"warehouse/internal/domain/store"

	"github.com/shopspring/decimal"
)

// ProductValue is the stock value of one priced product.
type ProductValue struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Stock       int             `json:"stock"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Value       decimal.Decimal `json:"value"`
}

// Valuation is the value of the stock on hand.
type Valuation struct {
	Products []ProductValue  `json:"products"`
	Total    decimal.Decimal `json:"total"`
	Unpriced int             `json:"unpriced"` // Products without a price.
}

// InventoryValuation sums price times stock over every priced product.
func InventoryValuation(s *store.Store) Valuation {
	v := Valuation{Products: []ProductValue{}, Total: decimal.Zero}
	for _, p := range s.ListProducts(nil) {
		if p.Price == nil {
			v.Unpriced++

			continue
		}
		value := p.Price.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
		v.Products = append(v.Products, ProductValue{
			ProductID:   p.ID,
			ProductName: p.Name,
			Stock:       p.CurrentStock,
			UnitPrice:   *p.Price,
			Value:       value,
		})
		v.Total = v.Total.Add(value)
	}

	return v
}
