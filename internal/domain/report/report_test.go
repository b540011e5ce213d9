package report

import (
	"math"
	"testing"
	"time"

	"warehouse/internal/domain/entity"
	domainerrors "warehouse/internal/domain/errors"
	"warehouse/internal/domain/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tehran = time.FixedZone("IRST", 3*3600+30*60)

func TestDashboard_LowStockCount(t *testing.T) {
	s := store.New().
		PutProduct(entity.Product{ID: "1", CurrentStock: 3, MinStock: 5}).
		PutProduct(entity.Product{ID: "2", CurrentStock: 10, MinStock: 2})

	stats := Dashboard(s, time.Now(), time.UTC)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockProducts)
}

func TestDashboard_TodayUsesLocalCalendarDay(t *testing.T) {
	// 21:00 UTC on the 9th is 00:30 on the 10th in Tehran.
	lateUTC := time.Date(2024, 3, 9, 21, 0, 0, 0, time.UTC)
	earlyUTC := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 10, 12, 0, 0, 0, tehran)

	s := store.New().
		PutProduct(entity.Product{ID: "1", CurrentStock: 50, MinStock: 5}).
		AppendTransaction(entity.Transaction{ID: "a", ProductID: "1", Type: entity.TransactionIn, Quantity: 10, Date: lateUTC}).
		AppendTransaction(entity.Transaction{ID: "b", ProductID: "1", Type: entity.TransactionIn, Quantity: 7, Date: earlyUTC}).
		AppendTransaction(entity.Transaction{ID: "c", ProductID: "1", Type: entity.TransactionOut, Quantity: 4, Date: lateUTC}).
		AppendTransaction(entity.Transaction{ID: "d", ProductID: "1", Type: entity.TransactionTransfer, Quantity: 9, Date: lateUTC}).
		AppendTransaction(entity.Transaction{ID: "e", ProductID: "gone", Type: entity.TransactionOut, Quantity: 2, Date: lateUTC})

	stats := Dashboard(s, today, tehran)

	assert.Equal(t, 10, stats.TodayIn)
	assert.Equal(t, 6, stats.TodayOut, "entries for deleted products still count by their own fields")
	assert.Equal(t, 0, stats.LowStockProducts)
}

func TestDashboard_Idempotent(t *testing.T) {
	s := store.New().
		PutProduct(entity.Product{ID: "1", CurrentStock: 1, MinStock: 5}).
		AppendTransaction(entity.Transaction{ID: "a", ProductID: "1", Type: entity.TransactionIn, Quantity: 1})
	now := time.Now()

	assert.Equal(t, Dashboard(s, now, time.UTC), Dashboard(s, now, time.UTC))
	assert.Equal(t, int64(2), s.Version(), "aggregation never mutates")
}

func TestLowStockList(t *testing.T) {
	s := store.New().
		PutProduct(entity.Product{ID: "1", CurrentStock: 5, MinStock: 5}).
		PutProduct(entity.Product{ID: "2", CurrentStock: 6, MinStock: 5}).
		PutProduct(entity.Product{ID: "3", CurrentStock: 0, MinStock: 1})

	got := LowStockList(s)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestRecentTransactions(t *testing.T) {
	s := store.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		s = s.AppendTransaction(entity.Transaction{ID: id})
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "fewer than log", n: 2, want: []string{"d", "c"}},
		{name: "more than log", n: 10, want: []string{"d", "c", "b", "a"}},
		{name: "zero", n: 0, want: []string{}},
		{name: "negative", n: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecentTransactions(s, tt.n)
			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestWarehouseOccupancy(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	s := store.New().
		PutProduct(entity.Product{ID: "1", Name: "Laptop"}).
		PutProduct(entity.Product{ID: "2", Name: "Mouse"}).
		PutProduct(entity.Product{ID: "3", Name: "Chair"}).
		PutWarehouse(entity.Warehouse{
			ID:               "B-2",
			Capacity:         500,
			CurrentOccupancy: 250,
			Status:           entity.WarehouseActive,
			Products: []entity.StockTally{
				{ProductID: "1", ProductName: "Laptop", Quantity: 100},
				{ProductID: "2", ProductName: "Mouse", Quantity: 150},
				{ProductID: "3", ProductName: "Chair", Quantity: 150},
			},
		}).
		AppendTransaction(entity.Transaction{ID: "t1", DestinationWarehouseID: "B-2"}).
		AppendTransaction(entity.Transaction{ID: "t2", SourceWarehouseID: "A-1"}).
		AppendTransaction(entity.Transaction{ID: "t3", SourceWarehouseID: "B-2", DestinationWarehouseID: "A-1"})

	r, err := WarehouseOccupancy(s, "B-2", now, 5)
	require.NoError(t, err)

	assert.Equal(t, 50, r.OccupancyRate)
	assert.Equal(t, 250, r.AvailableCapacity)
	assert.Equal(t, 400, r.TotalProducts)
	assert.Equal(t, 3, r.UniqueProductTypes)
	require.NotNil(t, r.MostStoredProduct)
	assert.Equal(t, "2", r.MostStoredProduct.ProductID, "first of equal maxima wins")
	require.Len(t, r.RecentTransactions, 2)
	assert.Equal(t, "t3", r.RecentTransactions[0].ID)
	assert.Equal(t, "t1", r.RecentTransactions[1].ID)
	assert.Equal(t, now, r.GeneratedAt)
}

func TestWarehouseOccupancy_SkipsDeletedProducts(t *testing.T) {
	s := store.New().
		PutProduct(entity.Product{ID: "1", Name: "Laptop"}).
		PutProduct(entity.Product{ID: "2", Name: "Mouse"}).
		PutWarehouse(entity.Warehouse{
			ID:               "A-1",
			Capacity:         100,
			CurrentOccupancy: 30,
			Products: []entity.StockTally{
				{ProductID: "1", ProductName: "Laptop", Quantity: 10},
				{ProductID: "2", ProductName: "Mouse", Quantity: 20},
			},
		}).
		RemoveProduct("2")

	r, err := WarehouseOccupancy(s, "A-1", time.Now(), 5)
	require.NoError(t, err)

	assert.Equal(t, 10, r.TotalProducts)
	assert.Equal(t, 1, r.UniqueProductTypes)
	require.NotNil(t, r.MostStoredProduct)
	assert.Equal(t, "1", r.MostStoredProduct.ProductID)
	assert.Equal(t, 30, r.OccupancyRate)
}

func TestWarehouseOccupancy_EmptyAndMissing(t *testing.T) {
	s := store.New().PutWarehouse(entity.Warehouse{ID: "E", Capacity: 3, CurrentOccupancy: 1})

	r, err := WarehouseOccupancy(s, "E", time.Now(), 5)
	require.NoError(t, err)
	assert.Nil(t, r.MostStoredProduct)
	assert.Equal(t, 33, r.OccupancyRate)
	assert.Empty(t, r.RecentTransactions)

	_, err = WarehouseOccupancy(s, "nope", time.Now(), 5)
	assert.ErrorIs(t, err, domainerrors.ErrWarehouseNotFound)
}

func TestOccupancyRate_Rounding(t *testing.T) {
	assert.Equal(t, 67, OccupancyRate(entity.Warehouse{Capacity: 3, CurrentOccupancy: 2}))
	assert.Equal(t, 100, OccupancyRate(entity.Warehouse{Capacity: 7, CurrentOccupancy: 7}))
	assert.Equal(t, 0, OccupancyRate(entity.Warehouse{Capacity: 0, CurrentOccupancy: 0}))
}

func quantities(list []entity.Transaction) []int {
	out := make([]int, 0, len(list))
	for _, t := range list {
		out = append(out, t.Quantity)
	}

	return out
}

func ids(list []entity.Transaction) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.ID)
	}

	return out
}

func TestSortTransactions_Composes(t *testing.T) {
	list := []entity.Transaction{
		{ID: "a", Quantity: 1},
		{ID: "b", Quantity: 3},
		{ID: "c", Quantity: 2},
		{ID: "d", Quantity: 3},
		{ID: "e", Quantity: 1},
	}
	asc := SortTransactions(list, SortByQuantity, Ascending)

	desc := SortTransactions(asc, SortByQuantity, Descending)
	assert.Equal(t, []int{3, 3, 2, 1, 1}, quantities(desc))

	again := SortTransactions(desc, SortByQuantity, Ascending)
	assert.Equal(t, []int{1, 1, 2, 3, 3}, quantities(again))
	assert.Equal(t, []string{"a", "e", "c", "b", "d"}, ids(asc))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(list), "input is not reordered")
}

func TestSortTransactions_Keys(t *testing.T) {
	d0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	list := []entity.Transaction{
		{ID: "2", ProductName: "Mouse", Type: entity.TransactionOut, Date: d0.Add(time.Hour)},
		{ID: "1", ProductName: "Chair", Type: entity.TransactionTransfer, Date: d0.Add(2 * time.Hour)},
		{ID: "3", ProductName: "Laptop", Type: entity.TransactionIn, Date: d0},
	}

	tests := []struct {
		key  SortKey
		dir  Direction
		want []string
	}{
		{key: SortByDate, dir: Descending, want: []string{"1", "2", "3"}},
		{key: SortByDate, dir: Ascending, want: []string{"3", "2", "1"}},
		{key: SortByProductName, dir: Ascending, want: []string{"1", "3", "2"}},
		{key: SortByType, dir: Ascending, want: []string{"3", "2", "1"}},
		{key: SortByID, dir: Descending, want: []string{"3", "2", "1"}},
		{key: "unknown", dir: Ascending, want: []string{"2", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key)+"/"+string(tt.dir), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortTransactions(list, tt.key, tt.dir)))
		})
	}
}

func TestParseSortKeyAndDirection(t *testing.T) {
	k, ok := ParseSortKey("amount")
	assert.True(t, ok)
	assert.Equal(t, SortByQuantity, k)

	_, ok = ParseSortKey("price")
	assert.False(t, ok)

	assert.Equal(t, Descending, ParseDirection("DESCENDING"))
	assert.Equal(t, Ascending, ParseDirection(""))
}

func TestPaginate(t *testing.T) {
	list := make([]int, 23)
	for i := range list {
		list[i] = i + 1
	}

	tests := []struct {
		name      string
		size      int
		page      int
		wantItems []int
		wantPages int
	}{
		{name: "first page", size: 10, page: 1, wantItems: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, wantPages: 3},
		{name: "last partial page", size: 10, page: 3, wantItems: []int{21, 22, 23}, wantPages: 3},
		{name: "past the end", size: 10, page: 4, wantItems: []int{}, wantPages: 3},
		{name: "page zero", size: 10, page: 0, wantItems: []int{}, wantPages: 3},
		{name: "zero size", size: 0, page: 1, wantItems: []int{}, wantPages: 0},
		{name: "huge size", size: math.MaxInt, page: 1, wantItems: list, wantPages: 1},
		{name: "huge page", size: 10, page: math.MaxInt, wantItems: []int{}, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(list, tt.size, tt.page)
			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, 23, p.Total)
		})
	}

	assert.Empty(t, Paginate([]int{}, 10, 1).Items)
}

func TestTransactionQuery(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	tx := entity.Transaction{
		ID:          "1",
		ProductID:   "p1",
		ProductName: "ASUS Laptop",
		Type:        entity.TransactionIn,
		Supplier:    "Tech Supplies",
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name  string
		query TransactionQuery
		want  bool
	}{
		{name: "empty", query: TransactionQuery{}, want: true},
		{name: "type match", query: TransactionQuery{Type: entity.TransactionIn}, want: true},
		{name: "type mismatch", query: TransactionQuery{Type: entity.TransactionOut}, want: false},
		{name: "product mismatch", query: TransactionQuery{ProductID: "p2"}, want: false},
		{name: "search product name", query: TransactionQuery{Search: "laptop"}, want: true},
		{name: "search supplier", query: TransactionQuery{Search: "TECH"}, want: true},
		{name: "search miss", query: TransactionQuery{Search: "chair"}, want: false},
		{name: "in range", query: TransactionQuery{From: &from, To: &to}, want: true},
		{name: "before range", query: TransactionQuery{From: &to}, want: false},
		{name: "after range", query: TransactionQuery{To: &from}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Match(tx))
		})
	}
}

func TestProductQuery(t *testing.T) {
	p := entity.Product{Name: "Office Chair", Code: "CHR001", Category: "office", CurrentStock: 25, MinStock: 8}

	assert.True(t, ProductQuery{}.Match(p))
	assert.True(t, ProductQuery{Category: "Office"}.Match(p))
	assert.False(t, ProductQuery{Category: "electronics"}.Match(p))
	assert.True(t, ProductQuery{Search: "chr0"}.Match(p))
	assert.False(t, ProductQuery{LowStockOnly: true}.Match(p))
}

func TestFilterTransactions_NilPredicate(t *testing.T) {
	list := []entity.Transaction{{ID: "a"}, {ID: "b"}}

	assert.Len(t, FilterTransactions(list, nil), 2)
	assert.Empty(t, FilterTransactions(list, func(entity.Transaction) bool { return false }))
}

func TestInventoryValuation(t *testing.T) {
	price := decimal.RequireFromString("12.50")
	cheap := decimal.RequireFromString("0.10")
	s := store.New().
		PutProduct(entity.Product{ID: "1", Name: "Laptop", CurrentStock: 4, Price: &price}).
		PutProduct(entity.Product{ID: "2", Name: "Mouse", CurrentStock: 3, Price: &cheap}).
		PutProduct(entity.Product{ID: "3", Name: "Chair", CurrentStock: 9})

	v := InventoryValuation(s)

	require.Len(t, v.Products, 2)
	assert.True(t, v.Products[0].Value.Equal(decimal.RequireFromString("50")))
	assert.True(t, v.Total.Equal(decimal.RequireFromString("50.30")), v.Total.String())
	assert.Equal(t, 1, v.Unpriced)

	p, _ := s.GetProduct("1")
	*p.Price = decimal.NewFromInt(999)
	assert.True(t, InventoryValuation(s).Total.Equal(decimal.RequireFromString("50.30")))
}
