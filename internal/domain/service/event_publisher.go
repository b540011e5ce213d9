package service

import (
	"context"
	"time"
)

// StockAlertType classifies a stock alert.
type StockAlertType string

const (
	StockAlertLow        StockAlertType = "low_stock"
	StockAlertOutOfStock StockAlertType = "out_of_stock"
)

// StockAlertEvent is emitted after a committed transaction leaves a product
// at or below its minimum stock.
type StockAlertEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	AlertID       string         `json:"alert_id"`
	ProductID     string         `json:"product_id"`
	ProductName   string         `json:"product_name"`
	ProductCode   string         `json:"product_code"`
	CurrentStock  int            `json:"current_stock"`
	MinStock      int            `json:"min_stock"`
	AlertType     StockAlertType `json:"alert_type"`
	TransactionID string         `json:"transaction_id"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// EventPublisher delivers domain events to a message queue.
type EventPublisher interface {
	// PublishStockAlert publishes a stock alert for async processing.
	PublishStockAlert(ctx context.Context, event *StockAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
