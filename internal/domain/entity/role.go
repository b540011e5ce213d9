package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin can do everything, including user management.
	RoleAdmin Role = "ADMIN"
	// RoleStaff runs day-to-day stock operations.
	RoleStaff Role = "STAFF"
	// RoleViewer has read-only access.
	RoleViewer Role = "VIEWER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]

	return ok
}

// CRUD is a set of create/read/update/delete flags.
type CRUD struct {
	View   bool `json:"view"`
	Create bool `json:"create"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// Permission is the capability set granted to a role.
type Permission struct {
	Dashboard    bool `json:"dashboard"`
	Products     CRUD `json:"products"`
	Transactions struct {
		View   bool `json:"view"`
		Create bool `json:"create"`
		Edit   bool `json:"edit"`
	} `json:"transactions"`
	Inventory struct {
		View   bool `json:"view"`
		Update bool `json:"update"`
	} `json:"inventory"`
	Reports struct {
		View   bool `json:"view"`
		Export bool `json:"export"`
	} `json:"reports"`
	UserManagement CRUD `json:"userManagement"`
}

var rolePermissions = map[Role]Permission{
	RoleAdmin:  buildPermission(true, true),
	RoleStaff:  buildPermission(true, false),
	RoleViewer: buildPermission(false, false),
}

// buildPermission encodes the fixed matrix: every role views everything
// except user management; staff can create and edit products and create
// transactions; only admins delete, edit transactions, update inventory,
// export reports and manage users.
func buildPermission(write, admin bool) Permission {
	const view = true

	var p Permission
	p.Dashboard = view
	p.Products = CRUD{View: view, Create: write, Edit: write, Delete: admin}
	p.Transactions.View = view
	p.Transactions.Create = write
	p.Transactions.Edit = admin
	p.Inventory.View = view
	p.Inventory.Update = admin
	p.Reports.View = view
	p.Reports.Export = admin
	p.UserManagement = CRUD{View: admin, Create: admin, Edit: admin, Delete: admin}

	return p
}

// Permissions returns the fixed capability set for the role.
// Unknown roles get no capabilities.
func (r Role) Permissions() Permission {
	return rolePermissions[r]
}
