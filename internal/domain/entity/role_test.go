package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Permissions(t *testing.T) {
	admin := RoleAdmin.Permissions()
	assert.True(t, admin.Dashboard)
	assert.Equal(t, CRUD{View: true, Create: true, Edit: true, Delete: true}, admin.Products)
	assert.True(t, admin.Transactions.Edit)
	assert.True(t, admin.Inventory.Update)
	assert.True(t, admin.Reports.Export)
	assert.Equal(t, CRUD{View: true, Create: true, Edit: true, Delete: true}, admin.UserManagement)

	staff := RoleStaff.Permissions()
	assert.Equal(t, CRUD{View: true, Create: true, Edit: true, Delete: false}, staff.Products)
	assert.True(t, staff.Transactions.Create)
	assert.False(t, staff.Transactions.Edit)
	assert.False(t, staff.Inventory.Update)
	assert.True(t, staff.Reports.View)
	assert.False(t, staff.Reports.Export)
	assert.Equal(t, CRUD{}, staff.UserManagement)

	viewer := RoleViewer.Permissions()
	assert.True(t, viewer.Dashboard)
	assert.Equal(t, CRUD{View: true}, viewer.Products)
	assert.True(t, viewer.Transactions.View)
	assert.False(t, viewer.Transactions.Create)
	assert.Equal(t, CRUD{}, viewer.UserManagement)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleStaff.IsValid())
	assert.True(t, RoleViewer.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.Equal(t, Permission{}, Role("ghost").Permissions())
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in   string
		want TransactionType
		ok   bool
	}{
		{in: "in", want: TransactionIn, ok: true},
		{in: "OUT", want: TransactionOut, ok: true},
		{in: " TRANSFER ", want: TransactionTransfer, ok: true},
		{in: "adjust", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTransactionType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWarehouse_CloneIsIndependent(t *testing.T) {
	w := Warehouse{
		ID:       "A-1",
		Manager:  &WarehouseManager{Name: "Reza"},
		Products: []StockTally{{ProductID: "1", Quantity: 5}},
	}

	c := w.Clone()
	c.Products[0].Quantity = 99
	c.Manager.Name = "Other"

	assert.Equal(t, 5, w.Products[0].Quantity)
	assert.Equal(t, "Reza", w.Manager.Name)
	assert.Equal(t, 5, w.Tally("1"))
	assert.Equal(t, 0, w.Tally("missing"))
}

func TestProduct_IsLowStock(t *testing.T) {
	assert.True(t, Product{CurrentStock: 5, MinStock: 5}.IsLowStock())
	assert.True(t, Product{CurrentStock: 3, MinStock: 5}.IsLowStock())
	assert.False(t, Product{CurrentStock: 10, MinStock: 2}.IsLowStock())
	assert.True(t, Product{CurrentStock: 0}.IsOutOfStock())
}
