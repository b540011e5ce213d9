package usecase

import (
	"context"

	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/store"
)

// Snapshot is the complete session state at one version. The Store is
// immutable; CurrentUser is a private copy.
type Snapshot struct {
	Store       *store.Store
	CurrentUser *entity.User
	CurrentPage entity.Page
	Version     int64 // Increases by one for every accepted command.
}

// Result is the state after a command together with the id of the entity
// it created or changed, if any.
type Result struct {
	Snapshot
	AffectedID string
}

// SeedData is a full set of inventory collections for LoadInitialData.
type SeedData struct {
	Products     []entity.Product
	Warehouses   []entity.Warehouse
	Transactions []entity.Transaction
}

// Dispatcher is the single writer of session and inventory state. Commands
// are applied one at a time; a rejected command leaves the state untouched.
type Dispatcher interface {
	// Dispatch applies cmd to the current state.
	Dispatch(ctx context.Context, cmd Command) (Result, error)

	// DispatchAt applies cmd only if the current version equals expectedVersion.
	DispatchAt(ctx context.Context, expectedVersion int64, cmd Command) (Result, error)

	// Snapshot returns the current state without blocking writers.
	Snapshot() Snapshot
}
