package main

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The memory store must honor the Store contract the handlers rely on:
// missing lookups return (nil, nil), Add methods upsert, and returned records
// are copies the caller can mutate freely.

func TestMemStoreLookupSemantics(t *testing.T) {
	s := newMemStore()

	tx, err := s.Transaction("missing")
	require.NoError(t, err)
	assert.Nil(t, tx)

	u, err := s.UserByEmail("nobody@thuchi.local")
	require.NoError(t, err)
	assert.Nil(t, u)

	p, err := s.PartnerByName("nobody")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemStoreUpsert(t *testing.T) {
	s := newMemStore()

	c := Category{ID: "cat_x", Name: "First", Type: TypeIncome}
	require.NoError(t, s.AddCategory(&c))

	c.Name = "Second"
	require.NoError(t, s.AddCategory(&c))

	all, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Second", all[0].Name)
}

func TestMemStoreReturnsCopies(t *testing.T) {
	s := newMemStore()

	tx := Transaction{
		ID:        "t1",
		Type:      TypeExpense,
		Date:      "2025-03-10",
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(10),
		Amount:    decimal.NewFromInt(10),
		Status:    StatusPending,
		CreatedAt: time.Now(),
		Attachments: []Attachment{
			{Name: "a.pdf", URL: "/uploads/a.pdf"},
		},
	}
	require.NoError(t, s.AddTransaction(&tx))

	got, err := s.Transaction("t1")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Mutating the returned record must not reach the store.
	got.Status = StatusApproved
	got.Attachments[0].Name = "tampered"

	again, err := s.Transaction("t1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, again.Status)
	assert.Equal(t, "a.pdf", again.Attachments[0].Name)
}

func TestMemStoreTransactionOrder(t *testing.T) {
	s := newMemStore()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	add := func(id, date string, created time.Time) {
		require.NoError(t, s.AddTransaction(&Transaction{
			ID: id, Type: TypeExpense, Date: date,
			Quantity: 1, UnitPrice: decimal.Zero, Amount: decimal.Zero,
			Status: StatusPending, CreatedAt: created,
		}))
	}
	add("old", "2025-03-01", base)
	add("new", "2025-03-15", base)
	add("same-day-later", "2025-03-15", base.Add(time.Hour))

	all, err := s.Transactions()
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "same-day-later", all[0].ID)
	assert.Equal(t, "new", all[1].ID)
	assert.Equal(t, "old", all[2].ID)
}

func TestMemStoreRoleLinks(t *testing.T) {
	s := newMemStore()
	require.NoError(t, seedDefaults(s))

	t.Run("empty role id lists every link", func(t *testing.T) {
		all, err := s.RolePermissions("")
		require.NoError(t, err)

		employee, err := s.RolePermissions(RoleEmployee)
		require.NoError(t, err)

		assert.Greater(t, len(all), len(employee))
		assert.Len(t, employee, 2)
	})

	t.Run("set replaces the link set wholesale", func(t *testing.T) {
		require.NoError(t, s.SetRolePermissions(RoleEmployee, []string{"tx_view"}))

		links, err := s.RolePermissions(RoleEmployee)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "tx_view", links[0].PermissionID)
	})

	t.Run("deleting a role drops its links", func(t *testing.T) {
		require.NoError(t, s.DeleteRole(RoleEmployee))

		links, err := s.RolePermissions(RoleEmployee)
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
