// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"warehouse/config"
	deliverycontext "warehouse/internal/delivery/context"
	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/ledger"
	"warehouse/internal/domain/service"
	"warehouse/internal/domain/store"
	"warehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dispatcher implements the Dispatcher interface. mu serializes writers;
// readers load the current snapshot pointer without locking.
type dispatcher struct {
	mu    sync.Mutex
	state atomic.Pointer[usecase.Snapshot]

	engine    *ledger.Engine
	publisher service.EventPublisher
	seed      func() usecase.SeedData
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
}

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDispatcher creates the dispatcher, loading the sample inventory first
// when ledger.seedOnStart is set.
func NewDispatcher(params DispatcherParams) (usecase.Dispatcher, error) {
	d := newDispatcher(ledger.NewEngine(), params.Publisher, params.Logger)

	if params.Config.Ledger != nil && params.Config.Ledger.SeedOnStart {
		if _, err := d.Dispatch(context.Background(), usecase.LoadInitialData{}); err != nil {
			return nil, errors.Wrap(err, "failed to load initial data")
		}
		params.Logger.Info("Loaded sample inventory", slog.Int("products", d.Snapshot().Store.ProductCount()))
	}

	return d, nil
}

func newDispatcher(engine *ledger.Engine, publisher service.EventPublisher, logger *slog.Logger) *dispatcher {
	d := &dispatcher{
		engine:    engine,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    logger,
	}
	d.seed = func() usecase.SeedData { return SampleInventory(d.now()) }
	d.state.Store(&usecase.Snapshot{Store: store.New(), CurrentPage: entity.PageLogin})

	return d
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (d *dispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Snapshot returns the current state.
func (d *dispatcher) Snapshot() usecase.Snapshot {
	return *d.state.Load()
}

// Dispatch applies cmd to the current state.
func (d *dispatcher) Dispatch(ctx context.Context, cmd usecase.Command) (usecase.Result, error) {
	return d.dispatch(ctx, nil, cmd)
}

// DispatchAt applies cmd only if no other command was accepted since expectedVersion.
func (d *dispatcher) DispatchAt(ctx context.Context, expectedVersion int64, cmd usecase.Command) (usecase.Result, error) {
	return d.dispatch(ctx, &expectedVersion, cmd)
}

// outcome is what applying one command produced.
type outcome struct {
	next     usecase.Snapshot
	affected string
	alerts   []*service.StockAlertEvent
}

func (d *dispatcher) dispatch(ctx context.Context, expected *int64, cmd usecase.Command) (usecase.Result, error) {
	if cmd == nil {
		return usecase.Result{Snapshot: d.Snapshot()}, errors.WithStack(
			domainerrors.New(domainerrors.KindMalformedCommand, "", "nil command"))
	}

	d.mu.Lock()
	cur := *d.state.Load()

	if expected != nil && *expected != cur.Version {
		d.mu.Unlock()
		d.log(ctx).Info("Command rejected on stale version",
			slog.String("command", string(cmd.Kind())),
			slog.Int64("expected", *expected),
			slog.Int64("current", cur.Version),
		)

		return usecase.Result{Snapshot: cur}, domainerrors.Newf(domainerrors.KindVersionConflict, "version",
			"expected %d, current %d", *expected, cur.Version)
	}

	out, err := d.apply(cur, cmd)
	if err != nil {
		d.mu.Unlock()
		d.log(ctx).Info("Command rejected",
			slog.String("command", string(cmd.Kind())),
			slog.Any("error", err),
		)

		return usecase.Result{Snapshot: cur}, err
	}

	out.next.Version = cur.Version + 1
	next := out.next
	d.state.Store(&next)
	d.mu.Unlock()

	d.log(ctx).Debug("Command applied",
		slog.String("command", string(cmd.Kind())),
		slog.Int64("version", next.Version),
		slog.String("affected_id", out.affected),
	)

	d.publish(ctx, out.alerts)

	return usecase.Result{Snapshot: next, AffectedID: out.affected}, nil
}

// apply computes the state after cmd. It must not touch d.state.
func (d *dispatcher) apply(cur usecase.Snapshot, cmd usecase.Command) (outcome, error) {
	out := outcome{next: cur}

	switch c := cmd.(type) {
	case usecase.AddProduct:
		p := c.Product
		if p.ID == "" {
			p.ID = d.newID()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = d.now()
		}
		if err := validateProduct(p); err != nil {
			return out, err
		}
		if _, exists := cur.Store.GetProduct(p.ID); exists {
			return out, domainerrors.New(domainerrors.KindProductExists, "id", p.ID)
		}
		out.next.Store = cur.Store.PutProduct(p)
		out.affected = p.ID

	case usecase.UpdateProduct:
		existing, ok := cur.Store.GetProduct(c.Product.ID)
		if !ok {
			return out, domainerrors.New(domainerrors.KindProductNotFound, "id", c.Product.ID)
		}
		p := c.Product
		p.CurrentStock = existing.CurrentStock
		p.CreatedAt = existing.CreatedAt
		if err := validateProduct(p); err != nil {
			return out, err
		}
		out.next.Store = cur.Store.PutProduct(p)
		if p.Name != existing.Name {
			out.next.Store = renameTallies(out.next.Store, p.ID, p.Name)
		}
		out.affected = p.ID

	case usecase.DeleteProduct:
		if _, ok := cur.Store.GetProduct(c.ID); !ok {
			return out, domainerrors.New(domainerrors.KindProductNotFound, "id", c.ID)
		}
		out.next.Store = cur.Store.RemoveProduct(c.ID)
		out.affected = c.ID

	case usecase.AddTransaction:
		next, tx, err := d.engine.Apply(cur.Store, c.Intent)
		if err != nil {
			return out, err
		}
		out.next.Store = next
		out.affected = tx.ID
		out.alerts = stockAlerts(cur.Store, next, tx, d.newID)

	case usecase.Login:
		if c.User.ID == "" {
			return out, domainerrors.New(domainerrors.KindMissingField, "user", "login requires a user")
		}
		u := c.User
		out.next.CurrentUser = &u
		out.next.CurrentPage = entity.PageDashboard
		out.affected = u.ID

	case usecase.Logout:
		out.next.CurrentUser = nil
		out.next.CurrentPage = entity.PageLogin

	case usecase.SetPage:
		if !c.Page.IsValid() {
			return out, domainerrors.New(domainerrors.KindInvalidPage, "page", string(c.Page))
		}
		out.next.CurrentPage = c.Page

	case usecase.LoadInitialData:
		data := c.Data
		if data == nil {
			seed := d.seed()
			data = &seed
		}
		out.next.Store = cur.Store.Replace(data.Products, data.Warehouses, data.Transactions)

	case usecase.AddWarehouse:
		w := c.Warehouse.Clone()
		if w.ID == "" {
			w.ID = d.newID()
		}
		if w.Status == "" {
			w.Status = entity.WarehouseActive
		}
		if err := validateWarehouse(w); err != nil {
			return out, err
		}
		if _, exists := cur.Store.GetWarehouse(w.ID); exists {
			return out, domainerrors.New(domainerrors.KindWarehouseExists, "id", w.ID)
		}
		out.next.Store = cur.Store.PutWarehouse(w)
		out.affected = w.ID

	case usecase.UpdateWarehouse:
		existing, ok := cur.Store.GetWarehouse(c.Warehouse.ID)
		if !ok {
			return out, domainerrors.New(domainerrors.KindWarehouseNotFound, "id", c.Warehouse.ID)
		}
		w := c.Warehouse.Clone()
		w.CurrentOccupancy = existing.CurrentOccupancy
		w.Products = existing.Products
		if w.Status == "" {
			w.Status = existing.Status
		}
		if err := validateWarehouse(w); err != nil {
			return out, err
		}
		out.next.Store = cur.Store.PutWarehouse(w)
		out.affected = w.ID

	case usecase.DeleteWarehouse:
		if _, ok := cur.Store.GetWarehouse(c.ID); !ok {
			return out, domainerrors.New(domainerrors.KindWarehouseNotFound, "id", c.ID)
		}
		out.next.Store = cur.Store.RemoveWarehouse(c.ID)
		out.affected = c.ID

	default:
		return out, errors.WithStack(domainerrors.Newf(domainerrors.KindMalformedCommand, "", "unknown command %T", cmd))
	}

	return out, nil
}

// renameTallies relabels every warehouse tally of a product. Logged
// transactions keep the name they were recorded with.
func renameTallies(st *store.Store, productID, name string) *store.Store {
	for _, w := range st.ListWarehouses(nil) {
		changed := false
		for i := range w.Products {
			if w.Products[i].ProductID == productID && w.Products[i].ProductName != name {
				w.Products[i].ProductName = name
				changed = true
			}
		}
		if changed {
			st = st.PutWarehouse(w)
		}
	}

	return st
}

func validateProduct(p entity.Product) error {
	switch {
	case p.Name == "":
		return domainerrors.New(domainerrors.KindMissingField, "name", "products require a name")
	case p.CurrentStock < 0:
		return domainerrors.Newf(domainerrors.KindInvalidProduct, "currentStock", "must not be negative, got %d", p.CurrentStock)
	case p.MinStock < 0:
		return domainerrors.Newf(domainerrors.KindInvalidProduct, "minStock", "must not be negative, got %d", p.MinStock)
	case p.Price != nil && p.Price.IsNegative():
		return domainerrors.New(domainerrors.KindInvalidProduct, "price", "must not be negative")
	}

	return nil
}

// validateWarehouse rejects out-of-range values; it never clamps them.
func validateWarehouse(w entity.Warehouse) error {
	switch {
	case w.Name == "":
		return domainerrors.New(domainerrors.KindMissingField, "name", "warehouses require a name")
	case w.Capacity <= 0:
		return domainerrors.Newf(domainerrors.KindInvalidWarehouse, "capacity", "must be positive, got %d", w.Capacity)
	case w.CurrentOccupancy < 0 || w.CurrentOccupancy > w.Capacity:
		return domainerrors.Newf(domainerrors.KindInvalidWarehouse, "currentOccupancy",
			"must be within 0..%d, got %d", w.Capacity, w.CurrentOccupancy)
	case !w.Status.IsValid():
		return domainerrors.New(domainerrors.KindInvalidWarehouse, "status", string(w.Status))
	}
	for _, t := range w.Products {
		if t.Quantity < 0 {
			return domainerrors.Newf(domainerrors.KindInvalidWarehouse, "products", "negative tally for product %s", t.ProductID)
		}
	}

	return nil
}

// stockAlerts returns an alert when tx lowered the product's stock to or
// below its minimum.
func stockAlerts(before, after *store.Store, tx entity.Transaction, newID func() string) []*service.StockAlertEvent {
	prev, ok := before.GetProduct(tx.ProductID)
	if !ok {
		return nil
	}
	p, ok := after.GetProduct(tx.ProductID)
	if !ok || p.CurrentStock >= prev.CurrentStock || !p.IsLowStock() {
		return nil
	}

	alertType := service.StockAlertLow
	if p.IsOutOfStock() {
		alertType = service.StockAlertOutOfStock
	}

	return []*service.StockAlertEvent{{
		AlertID:       newID(),
		ProductID:     p.ID,
		ProductName:   p.Name,
		ProductCode:   p.Code,
		CurrentStock:  p.CurrentStock,
		MinStock:      p.MinStock,
		AlertType:     alertType,
		TransactionID: tx.ID,
		OccurredAt:    tx.Date,
	}}
}

// publish runs after the state lock is released. Failures are logged; the
// command that raised the alert is already committed.
func (d *dispatcher) publish(ctx context.Context, alerts []*service.StockAlertEvent) {
	if d.publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, alert := range alerts {
		alert.RequestID = requestID
		if err := d.publisher.PublishStockAlert(ctx, alert); err != nil {
			d.log(ctx).Warn("Failed to publish stock alert",
				slog.String("alert_id", alert.AlertID),
				slog.String("product_id", alert.ProductID),
				slog.Any("error", err),
			)
		}
	}
}
