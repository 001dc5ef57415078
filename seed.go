package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Default system data. Mirrors what a fresh installation needs before anyone
// can log in: the permission catalog, the three built-in roles and their
// grants, sample master data, and one account per role.

var defaultPermissions = []Permission{
	{ID: "tx_view", Code: PermTransactionView, Name: "View transactions", Group: "Transactions"},
	{ID: "tx_create", Code: PermTransactionCreate, Name: "Create transactions", Group: "Transactions"},
	{ID: "tx_update", Code: PermTransactionUpdate, Name: "Edit transactions", Group: "Transactions"},
	{ID: "tx_delete", Code: PermTransactionDelete, Name: "Delete transactions", Group: "Transactions"},
	{ID: "tx_approve", Code: PermTransactionApprove, Name: "Approve transactions", Group: "Transactions"},
	{ID: "settle_manage", Code: PermSettlementManage, Name: "Manage settlement", Group: "Settlement"},
	{ID: "md_view", Code: PermMasterDataView, Name: "View master data", Group: "Master data"},
	{ID: "md_manage", Code: PermMasterDataManage, Name: "Manage master data", Group: "Master data"},
	{ID: "sys_manage", Code: PermSystemManage, Name: "System administration", Group: "System"},
}

var defaultRoles = []Role{
	{ID: RoleAdmin, Name: "Admin", Description: "System administrator"},
	{ID: RoleAccountant, Name: "Accountant", Description: "Manages income and expenses"},
	{ID: RoleEmployee, Name: "Employee", Description: "Regular staff"},
}

// Role grants. Admin gets everything implicitly so it carries no links.
var defaultRoleGrants = map[string][]string{
	RoleAccountant: {
		"tx_view", "tx_create", "tx_update", "tx_delete", "tx_approve",
		"settle_manage", "md_view", "md_manage",
	},
	RoleEmployee: {"tx_create", "md_view"},
}

var defaultCategories = []Category{
	{ID: "cat_salary", Name: "Tiền lương", Type: TypeIncome},
	{ID: "cat_sales", Name: "Bán hàng", Type: TypeIncome},
	{ID: "cat_bonus", Name: "Thưởng", Type: TypeIncome},
	{ID: "cat_food", Name: "Ăn uống", Type: TypeExpense},
	{ID: "cat_travel", Name: "Đi lại", Type: TypeExpense},
	{ID: "cat_shopping", Name: "Mua sắm", Type: TypeExpense},
	{ID: "cat_utilities", Name: "Điện nước", Type: TypeExpense},
}

var defaultUnits = []Unit{
	{ID: "unit_piece", Name: "Cái"},
	{ID: "unit_kg", Name: "Kg"},
	{ID: "unit_box", Name: "Hộp"},
	{ID: "unit_set", Name: "Bộ"},
}

var defaultPartners = []Partner{
	{ID: "part_abc", Name: "Công ty ABC", Type: PartnerBoth, Phone: "0123456789"},
	{ID: "part_store", Name: "Cửa hàng Tiện Lợi", Type: PartnerSupplier, Phone: "0987654321"},
	{ID: "part_retail", Name: "Khách hàng Lẻ", Type: PartnerCustomer},
}

type seedUser struct {
	User
	password string
}

var defaultUsers = []seedUser{
	{User{ID: "user_admin", Email: "admin@thuchi.local", FullName: "Administrator", Role: RoleAdmin}, "123"},
	{User{ID: "user_manager", Email: "manager@thuchi.local", FullName: "Trưởng phòng Kế toán", Role: RoleAccountant}, "123"},
	{User{ID: "user_staff", Email: "staff@thuchi.local", FullName: "Nhân viên Kinh doanh", Role: RoleEmployee}, "123"},
}

// seedDefaults upserts the default system data. It is idempotent, so the
// admin seed endpoint can be hit repeatedly without damage.
func seedDefaults(store Store) error {
	for i := range defaultPermissions {
		if err := store.AddPermission(&defaultPermissions[i]); err != nil {
			return err
		}
	}
	for i := range defaultRoles {
		if err := store.AddRole(&defaultRoles[i]); err != nil {
			return err
		}
	}
	for roleID, grants := range defaultRoleGrants {
		if err := store.SetRolePermissions(roleID, grants); err != nil {
			return err
		}
	}
	for i := range defaultCategories {
		if err := store.AddCategory(&defaultCategories[i]); err != nil {
			return err
		}
	}
	for i := range defaultUnits {
		if err := store.AddUnit(&defaultUnits[i]); err != nil {
			return err
		}
	}
	for i := range defaultPartners {
		if err := store.AddPartner(&defaultPartners[i]); err != nil {
			return err
		}
	}

	for _, su := range defaultUsers {
		existing, err := store.User(su.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue // never reset a password on reseed
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := su.User
		u.Password = string(hash)
		if err := store.AddUser(&u); err != nil {
			return err
		}
	}
	return nil
}

// seedIfEmpty bootstraps a brand-new database so the first login is possible.
func seedIfEmpty(store Store) error {
	users, err := store.Users()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	log.Println("No users found, seeding default system data")
	return seedDefaults(store)
}
