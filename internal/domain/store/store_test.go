package store

import (
	"testing"

	"warehouse/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutProductIsCopyOnWrite(t *testing.T) {
	s0 := New()
	s1 := s0.PutProduct(entity.Product{ID: "1", Name: "Laptop", CurrentStock: 15})

	_, ok := s0.GetProduct("1")
	assert.False(t, ok, "original snapshot must not see the insert")
	assert.Equal(t, int64(0), s0.Version())

	p, ok := s1.GetProduct("1")
	require.True(t, ok)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, int64(1), s1.Version())
}

func TestStore_PutProductReplaceKeepsOrder(t *testing.T) {
	s := New().
		PutProduct(entity.Product{ID: "1", Name: "Laptop"}).
		PutProduct(entity.Product{ID: "2", Name: "Mouse"}).
		PutProduct(entity.Product{ID: "1", Name: "Laptop Pro"})

	list := s.ListProducts(nil)
	require.Len(t, list, 2)
	assert.Equal(t, "Laptop Pro", list[0].Name)
	assert.Equal(t, "Mouse", list[1].Name)
	assert.Equal(t, 2, s.ProductCount())
}

func TestStore_ListProductsFilter(t *testing.T) {
	s := New().
		PutProduct(entity.Product{ID: "1", Category: "electronics"}).
		PutProduct(entity.Product{ID: "2", Category: "office"}).
		PutProduct(entity.Product{ID: "3", Category: "electronics"})

	got := s.ListProducts(func(p entity.Product) bool { return p.Category == "electronics" })
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestStore_RemoveProductDoesNotCascade(t *testing.T) {
	s := New().
		PutProduct(entity.Product{ID: "1", Name: "Laptop"}).
		AppendTransaction(entity.Transaction{ID: "t1", ProductID: "1", ProductName: "Laptop", Type: entity.TransactionIn, Quantity: 1})

	removed := s.RemoveProduct("1")

	_, ok := removed.GetProduct("1")
	assert.False(t, ok)
	assert.Equal(t, 1, removed.TransactionCount())
	assert.Empty(t, removed.ListProducts(nil))

	_, ok = s.GetProduct("1")
	assert.True(t, ok, "previous snapshot still has the product")
}

func TestStore_RemoveMissingIsIdentity(t *testing.T) {
	s := New().PutProduct(entity.Product{ID: "1"})

	assert.Same(t, s, s.RemoveProduct("nope"))
	assert.Same(t, s, s.RemoveWarehouse("nope"))
}

func TestStore_AppendTransactionOrderAndDuplicates(t *testing.T) {
	s := New().
		AppendTransaction(entity.Transaction{ID: "a", Quantity: 1}).
		AppendTransaction(entity.Transaction{ID: "b", Quantity: 2})

	dup := s.AppendTransaction(entity.Transaction{ID: "a", Quantity: 99})
	assert.Same(t, s, dup)

	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "a", txs[0].ID)
	assert.Equal(t, "b", txs[1].ID)

	got, ok := s.GetTransaction("b")
	require.True(t, ok)
	assert.Equal(t, 2, got.Quantity)
}

func TestStore_AppendDoesNotAliasSiblingSnapshots(t *testing.T) {
	base := New().AppendTransaction(entity.Transaction{ID: "a"})

	left := base.AppendTransaction(entity.Transaction{ID: "left"})
	right := base.AppendTransaction(entity.Transaction{ID: "right"})

	assert.Equal(t, "left", left.Transactions()[1].ID)
	assert.Equal(t, "right", right.Transactions()[1].ID)
	assert.Equal(t, 1, base.TransactionCount())
}

func TestStore_WarehouseReturnsPrivateCopies(t *testing.T) {
	s := New().PutWarehouse(entity.Warehouse{
		ID:       "A-1",
		Capacity: 100,
		Products: []entity.StockTally{{ProductID: "1", Quantity: 10}},
	})

	w, ok := s.GetWarehouse("A-1")
	require.True(t, ok)
	w.Products[0].Quantity = 50

	again, _ := s.GetWarehouse("A-1")
	assert.Equal(t, 10, again.Products[0].Quantity)

	list := s.ListWarehouses(nil)
	list[0].Products[0].Quantity = 70
	again, _ = s.GetWarehouse("A-1")
	assert.Equal(t, 10, again.Products[0].Quantity)
}

func TestStore_ProductReturnsPrivateCopies(t *testing.T) {
	price := decimal.NewFromInt(10)
	s := New().PutProduct(entity.Product{
		ID:    "1",
		Price: &price,
		Image: &entity.ProductImage{URL: "/img/1.png", FileName: "1.png"},
	})
	price = decimal.NewFromInt(1)

	p, ok := s.GetProduct("1")
	require.True(t, ok)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(10)), "put must not keep the caller's pointer")

	*p.Price = decimal.NewFromInt(999)
	p.Image.URL = "/img/other.png"

	again, _ := s.GetProduct("1")
	assert.True(t, again.Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "/img/1.png", again.Image.URL)

	list := s.ListProducts(nil)
	*list[0].Price = decimal.NewFromInt(7)
	again, _ = s.GetProduct("1")
	assert.True(t, again.Price.Equal(decimal.NewFromInt(10)))
}

func TestStore_Replace(t *testing.T) {
	s := New().PutProduct(entity.Product{ID: "old"})

	r := s.Replace(
		[]entity.Product{{ID: "1"}, {ID: "2"}},
		[]entity.Warehouse{{ID: "A-1", Capacity: 10}},
		[]entity.Transaction{{ID: "t1"}},
	)

	_, ok := r.GetProduct("old")
	assert.False(t, ok)
	assert.Equal(t, 2, r.ProductCount())
	assert.Len(t, r.ListWarehouses(nil), 1)
	assert.Equal(t, 1, r.TransactionCount())
	assert.Equal(t, s.Version()+1, r.Version())
}
