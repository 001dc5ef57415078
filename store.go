package main

// Store is the persistence collaborator. Lookups return (nil, nil) when the
// record does not exist; only I/O problems surface as errors. Add methods are
// upserts keyed on the record id, which keeps seeding idempotent.
//
// DeleteTransaction is a hard delete. It exists for completeness but no
// route calls it: transactions are only ever soft-deleted through the
// workflow.
type Store interface {
	Transactions() ([]Transaction, error)
	Transaction(id string) (*Transaction, error)
	AddTransaction(t *Transaction) error
	UpdateTransaction(t *Transaction) error
	DeleteTransaction(id string) error

	Categories() ([]Category, error)
	Category(id string) (*Category, error)
	AddCategory(c *Category) error
	UpdateCategory(c *Category) error
	DeleteCategory(id string) error

	Units() ([]Unit, error)
	Unit(id string) (*Unit, error)
	AddUnit(u *Unit) error
	UpdateUnit(u *Unit) error
	DeleteUnit(id string) error

	Partners() ([]Partner, error)
	Partner(id string) (*Partner, error)
	PartnerByName(name string) (*Partner, error)
	AddPartner(p *Partner) error
	UpdatePartner(p *Partner) error
	DeletePartner(id string) error

	Users() ([]User, error)
	User(id string) (*User, error)
	UserByEmail(email string) (*User, error)
	AddUser(u *User) error
	UpdateUser(u *User) error
	DeleteUser(id string) error

	Roles() ([]Role, error)
	Role(id string) (*Role, error)
	AddRole(r *Role) error
	UpdateRole(r *Role) error
	DeleteRole(id string) error

	Permissions() ([]Permission, error)
	AddPermission(p *Permission) error

	// RolePermissions returns the permission links for one role, or for all
	// roles when roleID is empty. SetRolePermissions replaces the role's
	// link set wholesale.
	RolePermissions(roleID string) ([]RolePermission, error)
	SetRolePermissions(roleID string, permissionIDs []string) error
}
