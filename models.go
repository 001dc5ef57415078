package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Built-in role ids
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleEmployee   = "employee"
)

// Permission codes
const (
	PermTransactionView    = "TRANSACTION_VIEW"
	PermTransactionCreate  = "TRANSACTION_CREATE"
	PermTransactionUpdate  = "TRANSACTION_UPDATE"
	PermTransactionDelete  = "TRANSACTION_DELETE"
	PermTransactionApprove = "TRANSACTION_APPROVE"
	PermSettlementManage   = "SETTLEMENT_MANAGE"
	PermMasterDataView     = "MASTER_DATA_VIEW"
	PermMasterDataManage   = "MASTER_DATA_MANAGE"
	PermSystemManage       = "SYSTEM_MANAGE"
)

// Attachment is a file attached to a transaction. The bytes live in the
// upload store; the transaction only keeps the public URL.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	URL      string `json:"url"`
}

// Transaction represents a single income or expense voucher.
type Transaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	CategoryID  string          `json:"categoryId"`
	Content     string          `json:"content"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"` // always quantity * unitPrice
	Partner     string          `json:"partner,omitempty"`
	Receiver    string          `json:"receiver,omitempty"`
	Attachments []Attachment    `json:"attachments"`

	Status     string     `json:"status"`
	IsDeleted  bool       `json:"isDeleted"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	IsSettled  bool       `json:"isSettled"`
	SettledAt  *time.Time `json:"settledAt,omitempty"`
	ApprovedBy *string    `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	RejectedBy *string    `json:"rejectedBy,omitempty"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TransactionInput carries the editable fields of a transaction. Lifecycle
// fields (status, settlement, audit) are never settable through it.
type TransactionInput struct {
	Type        string          `json:"type"`
	CategoryID  string          `json:"categoryId"`
	Content     string          `json:"content"`
	Date        string          `json:"date"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Partner     string          `json:"partner"`
	Receiver    string          `json:"receiver"`
	Attachments []Attachment    `json:"attachments"`
}

// Category is a master-data entry grouping transactions of one type.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // income | expense
}

// Unit is a unit of measure (master data).
type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Partner types
const (
	PartnerCustomer = "customer"
	PartnerSupplier = "supplier"
	PartnerBoth     = "both"
)

// Partner is a counterparty (master data). Type may be empty, meaning the
// partner is eligible for both income and expense transactions.
type Partner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"` // customer | supplier | both | ""
	Phone string `json:"phone,omitempty"`
}

// User is an application account. Password holds the bcrypt hash and never
// leaves the server.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"` // role id
	Password string `json:"-"`
}

// Role groups permissions. The "admin" role is built in and cannot be
// deleted; it implicitly holds every permission.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Permission is a grantable capability, namespaced by its code.
type Permission struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// RolePermission links a role to a permission.
type RolePermission struct {
	RoleID       string `json:"roleId"`
	PermissionID string `json:"permissionId"`
}
