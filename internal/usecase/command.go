// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "warehouse/internal/domain/entity"

// CommandKind names a dispatcher command.
type CommandKind string

const (
	CmdAddProduct      CommandKind = "ADD_PRODUCT"
	CmdUpdateProduct   CommandKind = "UPDATE_PRODUCT"
	CmdDeleteProduct   CommandKind = "DELETE_PRODUCT"
	CmdAddTransaction  CommandKind = "ADD_TRANSACTION"
	CmdLogin           CommandKind = "LOGIN"
	CmdLogout          CommandKind = "LOGOUT"
	CmdSetPage         CommandKind = "SET_PAGE"
	CmdLoadInitialData CommandKind = "LOAD_INITIAL_DATA"
	CmdAddWarehouse    CommandKind = "ADD_WAREHOUSE"
	CmdUpdateWarehouse CommandKind = "UPDATE_WAREHOUSE"
	CmdDeleteWarehouse CommandKind = "DELETE_WAREHOUSE"
)

// Command is a request to change the session or the inventory.
type Command interface {
	Kind() CommandKind
}

// AddProduct creates a product. An empty ID is assigned by the dispatcher.
type AddProduct struct {
	Product entity.Product
}

// UpdateProduct replaces a product's catalog fields. Its stock level is kept.
type UpdateProduct struct {
	Product entity.Product
}

// DeleteProduct removes a product. Its transaction history is kept.
type DeleteProduct struct {
	ID string
}

// AddTransaction records a stock movement through the ledger.
type AddTransaction struct {
	Intent entity.TransactionIntent
}

// Login makes User the current user and opens the dashboard.
type Login struct {
	User entity.User
}

// Logout clears the current user and returns to the login page.
type Logout struct{}

// SetPage navigates to Page.
type SetPage struct {
	Page entity.Page
}

// LoadInitialData replaces all inventory collections. A nil Data loads the
// built-in sample inventory.
type LoadInitialData struct {
	Data *SeedData
}

// AddWarehouse creates a warehouse. An empty ID is assigned by the dispatcher.
type AddWarehouse struct {
	Warehouse entity.Warehouse
}

// UpdateWarehouse replaces a warehouse's descriptive fields and capacity.
// Its occupancy and product tallies are kept.
type UpdateWarehouse struct {
	Warehouse entity.Warehouse
}

// DeleteWarehouse removes a warehouse.
type DeleteWarehouse struct {
	ID string
}

func (AddProduct) Kind() CommandKind      { return CmdAddProduct }
func (UpdateProduct) Kind() CommandKind   { return CmdUpdateProduct }
func (DeleteProduct) Kind() CommandKind   { return CmdDeleteProduct }
func (AddTransaction) Kind() CommandKind  { return CmdAddTransaction }
func (Login) Kind() CommandKind           { return CmdLogin }
func (Logout) Kind() CommandKind          { return CmdLogout }
func (SetPage) Kind() CommandKind         { return CmdSetPage }
func (LoadInitialData) Kind() CommandKind { return CmdLoadInitialData }
func (AddWarehouse) Kind() CommandKind    { return CmdAddWarehouse }
func (UpdateWarehouse) Kind() CommandKind { return CmdUpdateWarehouse }
func (DeleteWarehouse) Kind() CommandKind { return CmdDeleteWarehouse }
