package entity

import "time"

// WarehouseStatus is the operational state of a warehouse.
type WarehouseStatus string

const (
	WarehouseActive      WarehouseStatus = "ACTIVE"
	WarehouseMaintenance WarehouseStatus = "MAINTENANCE"
	WarehouseFull        WarehouseStatus = "FULL"
)

// IsValid checks if the WarehouseStatus is a known value.
func (s WarehouseStatus) IsValid() bool {
	switch s {
	case WarehouseActive, WarehouseMaintenance, WarehouseFull:
		return true
	default:
		return false
	}
}

// Warehouse is a storage site with a bounded capacity.
type Warehouse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Location          string            `json:"location"`
	Capacity          int               `json:"capacity"`
	CurrentOccupancy  int               `json:"currentOccupancy"` // 0 <= occupancy <= capacity
	Manager           *WarehouseManager `json:"manager,omitempty"`
	Status            WarehouseStatus   `json:"status"`
	Products          []StockTally      `json:"products"`
	LastInventoryDate *time.Time        `json:"lastInventoryDate,omitempty"`
}

// WarehouseManager is the contact responsible for a warehouse.
type WarehouseManager struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

// StockTally is the quantity of one product held in a warehouse.
type StockTally struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Tally returns the quantity of a product held here.
func (w Warehouse) Tally(productID string) int {
	for _, t := range w.Products {
		if t.ProductID == productID {
			return t.Quantity
		}
	}

	return 0
}

// Clone returns a copy that shares no mutable state with w.
func (w Warehouse) Clone() Warehouse {
	c := w
	c.Products = append([]StockTally(nil), w.Products...)
	if w.Manager != nil {
		m := *w.Manager
		c.Manager = &m
	}
	if w.LastInventoryDate != nil {
		d := *w.LastInventoryDate
		c.LastInventoryDate = &d
	}

	return c
}
