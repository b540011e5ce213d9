package entity

import (
	"strings"
	"time"
)

// TransactionType is the kind of stock movement.
type TransactionType string

const (
	TransactionIn       TransactionType = "in"
	TransactionOut      TransactionType = "out"
	TransactionTransfer TransactionType = "transfer"
)

// ParseTransactionType accepts both the simple (in/out) and the extended
// (IN/OUT/TRANSFER) vocabularies.
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", false
	}

	return t, true
}

// IsValid checks if the TransactionType is a known value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionTransfer:
		return true
	default:
		return false
	}
}

// String returns the string representation of the TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// Transaction is an immutable ledger entry. Corrections are made with
// compensating transactions, never by editing.
type Transaction struct {
	ID                     string          `json:"id"`
	ProductID              string          `json:"productId"`
	ProductName            string          `json:"productName"` // Name at the time the entry was committed.
	Type                   TransactionType `json:"type"`
	Quantity               int             `json:"quantity"`
	Date                   time.Time       `json:"date"`
	Supplier               string          `json:"supplier,omitempty"`
	Customer               string          `json:"customer,omitempty"`
	Destination            string          `json:"destination,omitempty"`
	Department             string          `json:"department,omitempty"`
	SourceWarehouseID      string          `json:"sourceWarehouseId,omitempty"`
	DestinationWarehouseID string          `json:"destinationWarehouseId,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
}

// TouchesWarehouse reports whether the entry moved stock in or out of the warehouse.
func (t Transaction) TouchesWarehouse(warehouseID string) bool {
	return warehouseID != "" && (t.SourceWarehouseID == warehouseID || t.DestinationWarehouseID == warehouseID)
}

// TransactionIntent is an unvalidated request to record a stock movement.
type TransactionIntent struct {
	ProductID              string
	Type                   TransactionType
	Quantity               int
	Supplier               string
	Customer               string
	Destination            string
	Department             string
	SourceWarehouseID      string
	DestinationWarehouseID string
	Notes                  string
}
