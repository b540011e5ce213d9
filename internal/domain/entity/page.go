package entity

// Page selects which dashboard screen the session is on.
type Page string

const (
	PageLogin        Page = "login"
	PageDashboard    Page = "dashboard"
	PageProducts     Page = "products"
	PageTransactions Page = "transactions"
	PageInventory    Page = "inventory"
	PageWarehouses   Page = "warehouses"
	PageReports      Page = "reports"
	PageUsers        Page = "users"
	PageSettings     Page = "settings"
)

// IsValid checks if the Page is a known screen.
func (p Page) IsValid() bool {
	switch p {
	case PageLogin, PageDashboard, PageProducts, PageTransactions, PageInventory,
		PageWarehouses, PageReports, PageUsers, PageSettings:
		return true
	default:
		return false
	}
}
