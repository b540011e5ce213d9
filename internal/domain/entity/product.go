// Package entity contains the core business objects of the inventory,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item whose stock level is tracked by the ledger.
type Product struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Code         string           `json:"code"` // Human-readable SKU
	Category     string           `json:"category"`
	CurrentStock int              `json:"currentStock"` // Only the ledger moves this value.
	MinStock     int              `json:"minStock"`     // Low-stock threshold.
	Location     string           `json:"location"`
	Supplier     string           `json:"supplier,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Description  string           `json:"description,omitempty"`
	Image        *ProductImage    `json:"image,omitempty"`
	Barcode      string           `json:"barcode,omitempty"`
}

// ProductImage references an uploaded product picture.
type ProductImage struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// Clone returns a copy that shares no mutable state with p.
func (p Product) Clone() Product {
	c := p
	if p.Price != nil {
		price := *p.Price
		c.Price = &price
	}
	if p.Image != nil {
		img := *p.Image
		c.Image = &img
	}

	return c
}

// IsLowStock reports whether the product is at or below its threshold.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// IsOutOfStock reports whether nothing is left.
func (p Product) IsOutOfStock() bool {
	return p.CurrentStock <= 0
}
