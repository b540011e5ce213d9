// Package ledger turns transaction intents into committed store snapshots.
// Apply is the only code path that changes a product's stock level or a
// warehouse's occupancy.
package ledger

import (
	"time"

	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/store"

	"github.com/google/uuid"
)

// Engine validates and applies transactions. It holds no state besides its
// clock and id source, so the same inputs always give the same outputs.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator sets the source of transaction ids.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// NewEngine creates an Engine stamping entries with time.Now and random UUIDs.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Apply validates intent against s and returns the snapshot with the
// movement committed together with the appended entry. On any failure it
// returns s itself and a *domainerrors.LedgerError; nothing is half-applied.
func (e *Engine) Apply(s *store.Store, intent entity.TransactionIntent) (*store.Store, entity.Transaction, error) {
	product, ok := s.GetProduct(intent.ProductID)
	if !ok {
		return s, entity.Transaction{}, domainerrors.New(domainerrors.KindProductNotFound, "productId", intent.ProductID)
	}

	if intent.Quantity <= 0 {
		return s, entity.Transaction{}, domainerrors.Newf(domainerrors.KindInvalidQuantity, "quantity", "got %d", intent.Quantity)
	}

	if err := validateFields(intent); err != nil {
		return s, entity.Transaction{}, err
	}

	plan, err := e.plan(s, product, intent)
	if err != nil {
		return s, entity.Transaction{}, err
	}

	tx := entity.Transaction{
		ID:                     e.newID(),
		ProductID:              product.ID,
		ProductName:            product.Name,
		Type:                   intent.Type,
		Quantity:               intent.Quantity,
		Date:                   e.now(),
		Supplier:               intent.Supplier,
		Customer:               intent.Customer,
		Destination:            intent.Destination,
		Department:             intent.Department,
		SourceWarehouseID:      intent.SourceWarehouseID,
		DestinationWarehouseID: intent.DestinationWarehouseID,
		Notes:                  intent.Notes,
	}
	if _, dup := s.GetTransaction(tx.ID); dup {
		return s, entity.Transaction{}, domainerrors.New(domainerrors.KindMalformedCommand, "id", "transaction id already used: "+tx.ID)
	}

	next := s
	if plan.product.CurrentStock != product.CurrentStock {
		next = next.PutProduct(plan.product)
	}
	for _, w := range plan.warehouses {
		next = next.PutWarehouse(w)
	}
	next = next.AppendTransaction(tx)

	return next, tx, nil
}

func validateFields(intent entity.TransactionIntent) error {
	switch intent.Type {
	case entity.TransactionIn:
		if intent.Supplier == "" {
			return domainerrors.New(domainerrors.KindMissingField, "supplier", "in transactions require a supplier")
		}
	case entity.TransactionOut:
		if intent.Customer == "" && intent.Department == "" {
			return domainerrors.New(domainerrors.KindMissingField, "customer", "out transactions require a customer or department")
		}
	case entity.TransactionTransfer:
		if intent.SourceWarehouseID == "" {
			return domainerrors.New(domainerrors.KindMissingField, "sourceWarehouseId", "transfers require a source warehouse")
		}
		if intent.DestinationWarehouseID == "" {
			return domainerrors.New(domainerrors.KindMissingField, "destinationWarehouseId", "transfers require a destination warehouse")
		}
	default:
		return domainerrors.New(domainerrors.KindInvalidTransactionType, "type", string(intent.Type))
	}

	return nil
}

// applyPlan is the full set of entity writes for one transaction.
type applyPlan struct {
	product    entity.Product
	warehouses []entity.Warehouse
}

func (e *Engine) plan(s *store.Store, product entity.Product, intent entity.TransactionIntent) (applyPlan, error) {
	q := intent.Quantity
	p := applyPlan{product: product}

	switch intent.Type {
	case entity.TransactionIn:
		p.product.CurrentStock += q
		if intent.DestinationWarehouseID != "" {
			w, ok := s.GetWarehouse(intent.DestinationWarehouseID)
			if !ok {
				return p, domainerrors.New(domainerrors.KindWarehouseNotFound, "destinationWarehouseId", intent.DestinationWarehouseID)
			}
			credited, err := credit(w, product, q)
			if err != nil {
				return p, err
			}
			p.warehouses = append(p.warehouses, credited)
		}

	case entity.TransactionOut:
		if product.CurrentStock < q {
			return p, insufficient("quantity", product.CurrentStock, q)
		}
		p.product.CurrentStock -= q
		if intent.SourceWarehouseID != "" {
			w, ok := s.GetWarehouse(intent.SourceWarehouseID)
			if !ok {
				return p, domainerrors.New(domainerrors.KindWarehouseNotFound, "sourceWarehouseId", intent.SourceWarehouseID)
			}
			debited, err := debit(w, product.ID, q)
			if err != nil {
				return p, err
			}
			p.warehouses = append(p.warehouses, debited)
		}

	case entity.TransactionTransfer:
		if intent.SourceWarehouseID == intent.DestinationWarehouseID {
			return p, domainerrors.New(domainerrors.KindInvalidWarehouseTransfer, "destinationWarehouseId", "source and destination are the same warehouse")
		}
		src, ok := s.GetWarehouse(intent.SourceWarehouseID)
		if !ok {
			return p, domainerrors.New(domainerrors.KindInvalidWarehouseTransfer, "sourceWarehouseId", "unknown warehouse "+intent.SourceWarehouseID)
		}
		dst, ok := s.GetWarehouse(intent.DestinationWarehouseID)
		if !ok {
			return p, domainerrors.New(domainerrors.KindInvalidWarehouseTransfer, "destinationWarehouseId", "unknown warehouse "+intent.DestinationWarehouseID)
		}
		// The out-leg must be coverable by the product's stock; the in-leg
		// puts it back, so the product total is unchanged.
		if product.CurrentStock < q {
			return p, insufficient("quantity", product.CurrentStock, q)
		}
		debited, err := debit(src, product.ID, q)
		if err != nil {
			return p, err
		}
		credited, err := credit(dst, product, q)
		if err != nil {
			return p, err
		}
		p.warehouses = append(p.warehouses, debited, credited)
	}

	return p, nil
}

func credit(w entity.Warehouse, product entity.Product, q int) (entity.Warehouse, error) {
	if w.CurrentOccupancy+q > w.Capacity {
		return w, domainerrors.Newf(domainerrors.KindCapacityExceeded, "destinationWarehouseId",
			"warehouse %s holds %d of %d, cannot add %d", w.ID, w.CurrentOccupancy, w.Capacity, q)
	}

	found := false
	for i := range w.Products {
		if w.Products[i].ProductID == product.ID {
			w.Products[i].Quantity += q
			w.Products[i].ProductName = product.Name
			found = true

			break
		}
	}
	if !found {
		w.Products = append(w.Products, entity.StockTally{ProductID: product.ID, ProductName: product.Name, Quantity: q})
	}

	w.CurrentOccupancy += q
	if w.CurrentOccupancy == w.Capacity && w.Status == entity.WarehouseActive {
		w.Status = entity.WarehouseFull
	}

	return w, nil
}

func debit(w entity.Warehouse, productID string, q int) (entity.Warehouse, error) {
	held := w.Tally(productID)
	if held < q {
		return w, insufficient("sourceWarehouseId", held, q)
	}
	if w.CurrentOccupancy < q {
		return w, insufficient("sourceWarehouseId", w.CurrentOccupancy, q)
	}

	for i := range w.Products {
		if w.Products[i].ProductID == productID {
			w.Products[i].Quantity -= q
			if w.Products[i].Quantity == 0 {
				w.Products = append(w.Products[:i], w.Products[i+1:]...)
			}

			break
		}
	}

	w.CurrentOccupancy -= q
	if w.Status == entity.WarehouseFull && w.CurrentOccupancy < w.Capacity {
		w.Status = entity.WarehouseActive
	}

	return w, nil
}

func insufficient(field string, available, requested int) error {
	return domainerrors.Newf(domainerrors.KindInsufficientStock, field, "available %d, requested %d", available, requested)
}
