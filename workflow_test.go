package main

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorkflow builds a seeded in-memory workflow with a frozen clock and
// returns one identity per built-in role.
func newTestWorkflow(t *testing.T) (*Workflow, map[string]*Identity) {
	t.Helper()

	s := newMemStore()
	require.NoError(t, seedDefaults(s))

	w := NewWorkflow(s)
	w.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

	idents := make(map[string]*Identity)
	for _, id := range []string{"user_admin", "user_manager", "user_staff"} {
		u, err := s.User(id)
		require.NoError(t, err)
		require.NotNil(t, u)
		ident, err := identityFor(s, u)
		require.NoError(t, err)
		idents[u.Role] = ident
	}
	return w, idents
}

func validInput() TransactionInput {
	return TransactionInput{
		Type:       TypeIncome,
		CategoryID: "cat_salary",
		Content:    "Lương tháng 3",
		Date:       "2025-03-01",
		Quantity:   2,
		UnitPrice:  decimal.NewFromInt(500000),
	}
}

func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	var le *LedgerError
	require.Error(t, err)
	require.True(t, errors.As(err, &le), "expected a LedgerError, got %v", err)
	assert.Equal(t, kind, le.Kind)
}

func TestWorkflowLifecycle(t *testing.T) {
	w, idents := newTestWorkflow(t)
	admin := idents[RoleAdmin]

	// Create: amount is derived, state starts pending.
	tx, err := w.Create(admin, validInput())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(1000000)))
	assert.False(t, tx.IsSettled)

	// Approve stamps actor and time.
	tx, err = w.Approve(admin, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, tx.Status)
	require.NotNil(t, tx.ApprovedBy)
	assert.Equal(t, admin.UserID, *tx.ApprovedBy)
	require.NotNil(t, tx.ApprovedAt)

	// Settle.
	tx, err = w.Settle(admin, tx.ID)
	require.NoError(t, err)
	assert.True(t, tx.IsSettled)

	// Revoking while settled is blocked.
	_, err = w.RevokeDecision(admin, tx.ID)
	assertKind(t, err, ErrInvariantViolation)
	assert.Contains(t, err.Error(), "unsettle first")

	// Unsettle, then revoke succeeds and clears every stamp.
	tx, err = w.Unsettle(admin, tx.ID)
	require.NoError(t, err)
	assert.False(t, tx.IsSettled)
	assert.Nil(t, tx.SettledAt)

	tx, err = w.RevokeDecision(admin, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, tx.Status)
	assert.Nil(t, tx.ApprovedBy)
	assert.Nil(t, tx.ApprovedAt)
	assert.Nil(t, tx.RejectedBy)
	assert.Nil(t, tx.RejectedAt)
}

func TestWorkflowGuards(t *testing.T) {
	w, idents := newTestWorkflow(t)
	admin := idents[RoleAdmin]
	accountant := idents[RoleAccountant]
	employee := idents[RoleEmployee]

	t.Run("employee cannot approve, delete or settle", func(t *testing.T) {
		tx, err := w.Create(employee, validInput())
		require.NoError(t, err)

		_, err = w.Approve(employee, tx.ID)
		assertKind(t, err, ErrPermissionDenied)

		err = w.SoftDelete(employee, tx.ID)
		assertKind(t, err, ErrPermissionDenied)

		_, err = w.Settle(employee, tx.ID)
		assertKind(t, err, ErrPermissionDenied)
	})

	t.Run("settle requires approved state", func(t *testing.T) {
		tx, err := w.Create(accountant, validInput())
		require.NoError(t, err)

		_, err = w.Settle(accountant, tx.ID)
		assertKind(t, err, ErrInvariantViolation)

		_, err = w.Reject(accountant, tx.ID)
		require.NoError(t, err)
		_, err = w.Settle(accountant, tx.ID)
		assertKind(t, err, ErrInvariantViolation)
	})

	t.Run("decisions only apply to pending transactions", func(t *testing.T) {
		tx, err := w.Create(accountant, validInput())
		require.NoError(t, err)
		_, err = w.Approve(accountant, tx.ID)
		require.NoError(t, err)

		_, err = w.Reject(accountant, tx.ID)
		assertKind(t, err, ErrInvariantViolation)
	})

	t.Run("unknown ids report not found", func(t *testing.T) {
		_, err := w.Approve(admin, "missing")
		assertKind(t, err, ErrNotFound)
	})

	t.Run("accountant may revoke, employee may not", func(t *testing.T) {
		tx, err := w.Create(accountant, validInput())
		require.NoError(t, err)
		_, err = w.Approve(accountant, tx.ID)
		require.NoError(t, err)

		_, err = w.RevokeDecision(employee, tx.ID)
		assertKind(t, err, ErrPermissionDenied)

		_, err = w.RevokeDecision(accountant, tx.ID)
		require.NoError(t, err)
	})
}

func TestWorkflowValidation(t *testing.T) {
	w, idents := newTestWorkflow(t)
	admin := idents[RoleAdmin]

	cases := []struct {
		name   string
		mutate func(*TransactionInput)
		kind   string
	}{
		{"bad type", func(in *TransactionInput) { in.Type = "transfer" }, ErrInvariantViolation},
		{"blank content", func(in *TransactionInput) { in.Content = "  " }, ErrInvariantViolation},
		{"bad date", func(in *TransactionInput) { in.Date = "01-03-2025" }, ErrInvariantViolation},
		{"zero quantity", func(in *TransactionInput) { in.Quantity = 0 }, ErrInvariantViolation},
		{"negative price", func(in *TransactionInput) { in.UnitPrice = decimal.NewFromInt(-1) }, ErrInvariantViolation},
		{"missing category", func(in *TransactionInput) { in.CategoryID = "cat_nope" }, ErrNotFound},
		{"category type mismatch", func(in *TransactionInput) { in.CategoryID = "cat_food" }, ErrInvariantViolation},
		{"unknown partner", func(in *TransactionInput) { in.Partner = "Không tồn tại" }, ErrNotFound},
		{"supplier on income", func(in *TransactionInput) { in.Partner = "Cửa hàng Tiện Lợi" }, ErrInvariantViolation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := w.Create(admin, in)
			assertKind(t, err, tc.kind)
		})
	}

	t.Run("failed validation writes nothing", func(t *testing.T) {
		before, err := w.store.Transactions()
		require.NoError(t, err)

		in := validInput()
		in.Quantity = 0
		_, err = w.Create(admin, in)
		require.Error(t, err)

		after, err := w.store.Transactions()
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})
}

func TestWorkflowVisibility(t *testing.T) {
	w, idents := newTestWorkflow(t)
	admin := idents[RoleAdmin]
	accountant := idents[RoleAccountant]
	employee := idents[RoleEmployee]

	mine, err := w.Create(employee, validInput())
	require.NoError(t, err)
	theirs, err := w.Create(accountant, validInput())
	require.NoError(t, err)

	t.Run("employee sees only their own", func(t *testing.T) {
		visible, err := w.Visible(employee)
		require.NoError(t, err)
		require.Len(t, visible, 1)
		assert.Equal(t, mine.ID, visible[0].ID)

		_, err = w.Get(employee, theirs.ID)
		assertKind(t, err, ErrNotFound)
	})

	t.Run("deleted records collapse to admin-only", func(t *testing.T) {
		require.NoError(t, w.SoftDelete(accountant, mine.ID))

		_, err := w.Get(accountant, mine.ID)
		assertKind(t, err, ErrNotFound)

		got, err := w.Get(admin, mine.ID)
		require.NoError(t, err)
		assert.True(t, got.IsDeleted)
	})

	t.Run("restore brings the record back for its owner", func(t *testing.T) {
		_, err := w.Restore(admin, mine.ID)
		require.NoError(t, err)

		got, err := w.Get(employee, mine.ID)
		require.NoError(t, err)
		assert.False(t, got.IsDeleted)
	})
}

func TestSettleBatchTwoPhase(t *testing.T) {
	w, idents := newTestWorkflow(t)
	accountant := idents[RoleAccountant]

	a, err := w.Create(accountant, validInput())
	require.NoError(t, err)
	b, err := w.Create(accountant, validInput())
	require.NoError(t, err)
	_, err = w.Approve(accountant, a.ID)
	require.NoError(t, err)
	_, err = w.Approve(accountant, b.ID)
	require.NoError(t, err)

	t.Run("missing ids are skipped", func(t *testing.T) {
		settled, err := w.SettleBatch(accountant, []string{a.ID, "missing", b.ID})
		require.NoError(t, err)
		assert.Len(t, settled, 2)
	})

	t.Run("a pending member aborts before any write", func(t *testing.T) {
		approved, err := w.Create(accountant, validInput())
		require.NoError(t, err)
		_, err = w.Approve(accountant, approved.ID)
		require.NoError(t, err)
		pending, err := w.Create(accountant, validInput())
		require.NoError(t, err)

		_, err = w.SettleBatch(accountant, []string{approved.ID, pending.ID})
		assertKind(t, err, ErrInvariantViolation)

		got, err := w.Get(accountant, approved.ID)
		require.NoError(t, err)
		assert.False(t, got.IsSettled)
	})
}

func TestPermissionResolution(t *testing.T) {
	s := newMemStore()
	require.NoError(t, seedDefaults(s))

	t.Run("admin can do anything without explicit grants", func(t *testing.T) {
		u, err := s.User("user_admin")
		require.NoError(t, err)
		ident, err := identityFor(s, u)
		require.NoError(t, err)

		assert.True(t, ident.IsAdmin())
		assert.True(t, ident.Can(PermSystemManage))
		assert.True(t, ident.Can("SOME_FUTURE_PERMISSION"))
	})

	t.Run("employee set matches the seeded grants", func(t *testing.T) {
		u, err := s.User("user_staff")
		require.NoError(t, err)
		ident, err := identityFor(s, u)
		require.NoError(t, err)

		assert.True(t, ident.Can(PermTransactionCreate))
		assert.True(t, ident.Can(PermMasterDataView))
		assert.False(t, ident.Can(PermTransactionApprove))
		assert.False(t, ident.Can(PermSystemManage))
	})

	t.Run("rewriting the grant set takes effect on the next resolution", func(t *testing.T) {
		require.NoError(t, s.SetRolePermissions(RoleEmployee, []string{"tx_create", "tx_approve"}))

		u, err := s.User("user_staff")
		require.NoError(t, err)
		ident, err := identityFor(s, u)
		require.NoError(t, err)

		assert.True(t, ident.Can(PermTransactionApprove))
		assert.False(t, ident.Can(PermMasterDataView))
	})
}
