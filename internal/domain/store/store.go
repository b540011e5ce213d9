// Package store holds the canonical collections of the inventory as an
// immutable snapshot. Every mutator returns a new *Store and leaves the
// receiver untouched, so a snapshot handed to a reader never changes.
package store

import (
	"maps"
	"slices"

	"warehouse/internal/domain/entity"
)

// Store is a complete, consistent view of products, warehouses and the
// transaction log at one version. The zero value is not usable; use New.
type Store struct {
	version int64

	products     map[string]entity.Product
	productOrder []string

	warehouses     map[string]entity.Warehouse
	warehouseOrder []string

	transactions []entity.Transaction
	txIndex      map[string]int
}

// New returns an empty store at version 0.
func New() *Store {
	return &Store{
		products:   map[string]entity.Product{},
		warehouses: map[string]entity.Warehouse{},
		txIndex:    map[string]int{},
	}
}

// Version increases by one on every mutation.
func (s *Store) Version() int64 {
	return s.version
}

// shallow copies the struct header; the caller replaces whatever collection it changes.
func (s *Store) shallow() *Store {
	c := *s
	c.version++

	return &c
}

// --- Products ---

// GetProduct looks a product up by id. The result is a private copy.
func (s *Store) GetProduct(id string) (entity.Product, bool) {
	p, ok := s.products[id]
	if !ok {
		return entity.Product{}, false
	}

	return p.Clone(), true
}

// ListProducts returns products in insertion order. A nil filter keeps all.
func (s *Store) ListProducts(filter func(entity.Product) bool) []entity.Product {
	out := make([]entity.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		p := s.products[id]
		if filter == nil || filter(p) {
			out = append(out, p.Clone())
		}
	}

	return out
}

// ProductCount returns the number of products.
func (s *Store) ProductCount() int {
	return len(s.productOrder)
}

// PutProduct inserts or fully replaces a product, keyed by id.
func (s *Store) PutProduct(p entity.Product) *Store {
	c := s.shallow()
	c.products = maps.Clone(s.products)
	if _, exists := s.products[p.ID]; !exists {
		c.productOrder = append(slices.Clip(s.productOrder), p.ID)
	}
	c.products[p.ID] = p.Clone()

	return c
}

// RemoveProduct deletes a product. Transactions that reference it are kept.
func (s *Store) RemoveProduct(id string) *Store {
	if _, ok := s.products[id]; !ok {
		return s
	}

	c := s.shallow()
	c.products = maps.Clone(s.products)
	delete(c.products, id)
	c.productOrder = slices.DeleteFunc(slices.Clone(s.productOrder), func(v string) bool { return v == id })

	return c
}

// --- Warehouses ---

// GetWarehouse looks a warehouse up by id. The result is a private copy.
func (s *Store) GetWarehouse(id string) (entity.Warehouse, bool) {
	w, ok := s.warehouses[id]
	if !ok {
		return entity.Warehouse{}, false
	}

	return w.Clone(), true
}

// ListWarehouses returns warehouses in insertion order. A nil filter keeps all.
func (s *Store) ListWarehouses(filter func(entity.Warehouse) bool) []entity.Warehouse {
	out := make([]entity.Warehouse, 0, len(s.warehouseOrder))
	for _, id := range s.warehouseOrder {
		w := s.warehouses[id]
		if filter == nil || filter(w) {
			out = append(out, w.Clone())
		}
	}

	return out
}

// PutWarehouse inserts or fully replaces a warehouse, keyed by id.
func (s *Store) PutWarehouse(w entity.Warehouse) *Store {
	c := s.shallow()
	c.warehouses = maps.Clone(s.warehouses)
	if _, exists := s.warehouses[w.ID]; !exists {
		c.warehouseOrder = append(slices.Clip(s.warehouseOrder), w.ID)
	}
	c.warehouses[w.ID] = w.Clone()

	return c
}

// RemoveWarehouse deletes a warehouse.
func (s *Store) RemoveWarehouse(id string) *Store {
	if _, ok := s.warehouses[id]; !ok {
		return s
	}

	c := s.shallow()
	c.warehouses = maps.Clone(s.warehouses)
	delete(c.warehouses, id)
	c.warehouseOrder = slices.DeleteFunc(slices.Clone(s.warehouseOrder), func(v string) bool { return v == id })

	return c
}

// --- Transactions ---

// GetTransaction looks a transaction up by id.
func (s *Store) GetTransaction(id string) (entity.Transaction, bool) {
	i, ok := s.txIndex[id]
	if !ok {
		return entity.Transaction{}, false
	}

	return s.transactions[i], true
}

// Transactions returns the log in insertion order (oldest first).
func (s *Store) Transactions() []entity.Transaction {
	return slices.Clone(s.transactions)
}

// TransactionCount returns the length of the log.
func (s *Store) TransactionCount() int {
	return len(s.transactions)
}

// AppendTransaction adds an entry to the end of the log. Entries are never
// updated or removed; appending an id that is already present is a no-op.
func (s *Store) AppendTransaction(t entity.Transaction) *Store {
	if _, dup := s.txIndex[t.ID]; dup {
		return s
	}

	c := s.shallow()
	c.transactions = append(slices.Clip(s.transactions), t)
	c.txIndex = maps.Clone(s.txIndex)
	c.txIndex[t.ID] = len(c.transactions) - 1

	return c
}

// Replace builds a store holding exactly the given collections, one version
// after s. Used for bulk loads.
func (s *Store) Replace(products []entity.Product, warehouses []entity.Warehouse, transactions []entity.Transaction) *Store {
	fresh := New()
	for _, p := range products {
		fresh = fresh.PutProduct(p)
	}
	for _, w := range warehouses {
		fresh = fresh.PutWarehouse(w)
	}
	for _, t := range transactions {
		fresh = fresh.AppendTransaction(t)
	}
	fresh.version = s.version + 1

	return fresh
}
