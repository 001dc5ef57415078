package main

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Workflow owns the transaction lifecycle: pending -> approved/rejected,
// settlement, soft delete. Every transition checks its guard before touching
// the store, so a failed guard leaves no partial effect.
type Workflow struct {
	store Store
	now   func() time.Time
}

func NewWorkflow(store Store) *Workflow {
	return &Workflow{store: store, now: time.Now}
}

func (w *Workflow) get(id string) (*Transaction, error) {
	t, err := w.store.Transaction(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("transaction not found")
	}
	return t, nil
}

// validateInput normalizes and checks the editable fields: the category must
// exist and match the transaction type, a named partner must be eligible for
// that type, and the commercial fields must be sane.
func (w *Workflow) validateInput(in *TransactionInput) error {
	in.Content = strings.TrimSpace(in.Content)
	in.Partner = strings.TrimSpace(in.Partner)

	if in.Type != TypeIncome && in.Type != TypeExpense {
		return invariantViolation("type must be income or expense")
	}
	if in.Content == "" {
		return invariantViolation("content is required")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return invariantViolation("date must be YYYY-MM-DD")
	}
	if in.Quantity < 1 {
		return invariantViolation("quantity must be at least 1")
	}
	if in.UnitPrice.IsNegative() {
		return invariantViolation("unit price cannot be negative")
	}

	cat, err := w.store.Category(in.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return notFound("category not found")
	}
	if cat.Type != in.Type {
		return invariantViolation("category %q is a %s category, not %s", cat.Name, cat.Type, in.Type)
	}

	if in.Partner != "" {
		p, err := w.store.PartnerByName(in.Partner)
		if err != nil {
			return err
		}
		if p == nil {
			return notFound("partner %q not found", in.Partner)
		}
		switch p.Type {
		case "", PartnerBoth:
			// eligible for both directions
		case PartnerCustomer:
			if in.Type != TypeIncome {
				return invariantViolation("partner %q is a customer and only valid on income", p.Name)
			}
		case PartnerSupplier:
			if in.Type != TypeExpense {
				return invariantViolation("partner %q is a supplier and only valid on expense", p.Name)
			}
		}
	}
	return nil
}

func amountOf(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

func applyInput(t *Transaction, in *TransactionInput) {
	t.Type = in.Type
	t.CategoryID = in.CategoryID
	t.Content = in.Content
	t.Date = in.Date
	t.Quantity = in.Quantity
	t.UnitPrice = in.UnitPrice
	t.Amount = amountOf(in.Quantity, in.UnitPrice)
	t.Partner = in.Partner
	t.Receiver = in.Receiver
	if in.Attachments != nil {
		t.Attachments = in.Attachments
	}
}

// Create records a new transaction in pending state.
func (w *Workflow) Create(actor *Identity, in TransactionInput) (*Transaction, error) {
	if !actor.Can(PermTransactionCreate) {
		return nil, permissionDenied("you are not allowed to create transactions")
	}
	if err := w.validateInput(&in); err != nil {
		return nil, err
	}

	now := w.now()
	t := &Transaction{
		ID:          uuid.NewString(),
		Status:      StatusPending,
		Attachments: []Attachment{},
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyInput(t, &in)
	if err := w.store.AddTransaction(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update rewrites the editable fields. An approved transaction may only be
// edited by admin; the status itself never changes here.
func (w *Workflow) Update(actor *Identity, id string, in TransactionInput) (*Transaction, error) {
	if !actor.Can(PermTransactionUpdate) {
		return nil, permissionDenied("you are not allowed to edit transactions")
	}
	t, err := w.get(id)
	if err != nil {
		return nil, err
	}
	if t.Status == StatusApproved && !actor.IsAdmin() {
		return nil, permissionDenied("approved transactions can only be edited by admin")
	}
	if err := w.validateInput(&in); err != nil {
		return nil, err
	}

	applyInput(t, &in)
	t.UpdatedAt = w.now()
	if err := w.store.UpdateTransaction(t); err != nil {
		return nil, err
	}
	return t, nil
}

// SoftDelete flags the record; nothing is ever removed from the store.
func (w *Workflow) SoftDelete(actor *Identity, id string) error {
	if !actor.Can(PermTransactionDelete) {
		return permissionDenied("you are not allowed to delete transactions")
	}
	t, err := w.get(id)
	if err != nil {
		return err
	}
	now := w.now()
	t.IsDeleted = true
	t.DeletedAt = &now
	t.UpdatedAt = now
	return w.store.UpdateTransaction(t)
}

// Restore clears the soft-delete flag. Admin only.
func (w *Workflow) Restore(actor *Identity, id string) (*Transaction, error) {
	if !actor.IsAdmin() {
		return nil, permissionDenied("only admin can restore deleted transactions")
	}
	t, err := w.get(id)
	if err != nil {
		return nil, err
	}
	if !t.IsDeleted {
		return nil, invariantViolation("transaction is not deleted")
	}
	t.IsDeleted = false
	t.DeletedAt = nil
	t.UpdatedAt = w.now()
	if err := w.store.UpdateTransaction(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Approve moves pending -> approved and stamps the decision.
func (w *Workflow) Approve(actor *Identity, id string) (*Transaction, error) {
	return w.decide(actor, id, StatusApproved)
}

// Reject moves pending -> rejected and stamps the decision.
func (w *Workflow) Reject(actor *Identity, id string) (*Transaction, error) {
	return w.decide(actor, id, StatusRejected)
}

func (w *Workflow) decide(actor *Identity, id, status string) (*Transaction, error) {
	if !actor.Can(PermTransactionApprove) {
		return nil, permissionDenied("you are not allowed to approve or reject transactions")
	}
	t, err := w.get(id)
	if err != nil {
		return nil, err
	}
	if t.Status != StatusPending {
		return nil, invariantViolation("only pending transactions can be approved or rejected")
	}

	now := w.now()
	actorID := actor.UserID
	t.Status = status
	if status == StatusApproved {
		t.ApprovedBy = &actorID
		t.ApprovedAt = &now
	} else {
		t.RejectedBy = &actorID
		t.RejectedAt = &now
	}
	t.UpdatedAt = now
	if err := w.store.UpdateTransaction(t); err != nil {
		return nil, err
	}
	return t, nil
}

// RevokeDecision returns an approved or rejected transaction to pending and
// clears both decision stamps. Settled transactions must be unsettled first.
func (w *Workflow) RevokeDecision(actor *Identity, id string) (*Transaction, error) {
	if actor.Role != RoleAdmin && actor.Role != RoleAccountant {
		return nil, permissionDenied("only admin or accountant can revoke a decision")
	}
	t, err := w.get(id)
	if err != nil {
		return nil, err
	}
	if t.Status == StatusPending {
		return nil, invariantViolation("transaction has no decision to revoke")
	}
	if t.IsSettled {
		return nil, invariantViolation("transaction is settled: unsettle first")
	}

	t.Status = StatusPending
	t.ApprovedBy = nil
	t.ApprovedAt = nil
	t.RejectedBy = nil
	t.RejectedAt = nil
	t.UpdatedAt = w.now()
	if err := w.store.UpdateTransaction(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Settle marks an approved transaction as reconciled.
func (w *Workflow) Settle(actor *Identity, id string) (*Transaction, error) {
	if !actor.Can(PermSettlementManage) {
		return nil, permissionDenied("you are not allowed to manage settlement")
	}
	t, err := w.get(id)
	if err != nil {
		return nil, err
	}
	if err := w.settleOne(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (w *Workflow) settleOne(t *Transaction) error {
	if t.Status != StatusApproved {
		return invariantViolation("only approved transactions can be settled")
	}
	now := w.now()
	t.IsSettled = true
	t.SettledAt = &now
	t.UpdatedAt = now
	return w.store.UpdateTransaction(t)
}

// SettleBatch settles every id that exists. Missing ids are skipped without
// error; any guard failure aborts before the first write.
func (w *Workflow) SettleBatch(actor *Identity, ids []string) ([]Transaction, error) {
	if !actor.Can(PermSettlementManage) {
		return nil, permissionDenied("you are not allowed to manage settlement")
	}

	var found []*Transaction
	for _, id := range ids {
		t, err := w.store.Transaction(id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		if t.Status != StatusApproved {
			return nil, invariantViolation("only approved transactions can be settled")
		}
		found = append(found, t)
	}

	settled := make([]Transaction, 0, len(found))
	for _, t := range found {
		if err := w.settleOne(t); err != nil {
			return settled, err
		}
		settled = append(settled, *t)
	}
	return settled, nil
}

// Unsettle reopens a settled transaction.
func (w *Workflow) Unsettle(actor *Identity, id string) (*Transaction, error) {
	if !actor.Can(PermSettlementManage) {
		return nil, permissionDenied("you are not allowed to manage settlement")
	}
	t, err := w.get(id)
	if err != nil {
		return nil, err
	}
	if !t.IsSettled {
		return nil, invariantViolation("transaction is not settled")
	}

	t.IsSettled = false
	t.SettledAt = nil
	t.UpdatedAt = w.now()
	if err := w.store.UpdateTransaction(t); err != nil {
		return nil, err
	}
	return t, nil
}

// canSeeAll reports whether the actor sees the whole ledger or only their own
// records. Employees (and anyone without the view permission) only see what
// they created.
func canSeeAll(actor *Identity) bool {
	if actor.Role == RoleEmployee {
		return false
	}
	return actor.Can(PermTransactionView)
}

func visibleTo(actor *Identity, t *Transaction) bool {
	if t.IsDeleted && !actor.IsAdmin() {
		return false
	}
	if !canSeeAll(actor) {
		return t.CreatedBy == actor.UserID
	}
	return true
}

// Visible lists the transactions the actor may see, newest first.
func (w *Workflow) Visible(actor *Identity) ([]Transaction, error) {
	all, err := w.store.Transactions()
	if err != nil {
		return nil, err
	}
	out := make([]Transaction, 0, len(all))
	for i := range all {
		if visibleTo(actor, &all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Get returns one transaction if the actor may see it; hidden records look
// exactly like missing ones.
func (w *Workflow) Get(actor *Identity, id string) (*Transaction, error) {
	t, err := w.get(id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(actor, t) {
		return nil, notFound("transaction not found")
	}
	return t, nil
}
