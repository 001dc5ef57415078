package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// pgStore is the Postgres Store, backed by a pgx connection pool. Numeric
// columns travel as text so decimals never pass through a float.
type pgStore struct {
	pool *pgxpool.Pool
}

func newPGStore(pool *pgxpool.Pool) *pgStore {
	return &pgStore{pool: pool}
}

const transactionColumns = `
	id, type, category_id, content, to_char(date, 'YYYY-MM-DD'),
	quantity, unit_price::text, amount::text, partner, receiver, attachments,
	status, is_deleted, deleted_at, is_settled, settled_at,
	approved_by, approved_at, rejected_by, rejected_at,
	created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var t Transaction
	var unitPrice, amount string
	var attachments []byte

	err := row.Scan(
		&t.ID, &t.Type, &t.CategoryID, &t.Content, &t.Date,
		&t.Quantity, &unitPrice, &amount, &t.Partner, &t.Receiver, &attachments,
		&t.Status, &t.IsDeleted, &t.DeletedAt, &t.IsSettled, &t.SettledAt,
		&t.ApprovedBy, &t.ApprovedAt, &t.RejectedBy, &t.RejectedAt,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if t.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return nil, err
	}
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	t.Attachments = []Attachment{}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &t.Attachments); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func (s *pgStore) Transactions() ([]Transaction, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *pgStore) Transaction(id string) (*Transaction, error) {
	row := s.pool.QueryRow(context.Background(),
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	t, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (s *pgStore) saveTransaction(t *Transaction) error {
	attachments, err := json.Marshal(t.Attachments)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(context.Background(), `
		INSERT INTO transactions (
			id, type, category_id, content, date,
			quantity, unit_price, amount, partner, receiver, attachments,
			status, is_deleted, deleted_at, is_settled, settled_at,
			approved_by, approved_at, rejected_by, rejected_at,
			created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5::date,
			$6, $7::numeric, $8::numeric, $9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18, $19, $20,
			$21, $22, $23
		)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type, category_id = EXCLUDED.category_id,
			content = EXCLUDED.content, date = EXCLUDED.date,
			quantity = EXCLUDED.quantity, unit_price = EXCLUDED.unit_price,
			amount = EXCLUDED.amount, partner = EXCLUDED.partner,
			receiver = EXCLUDED.receiver, attachments = EXCLUDED.attachments,
			status = EXCLUDED.status, is_deleted = EXCLUDED.is_deleted,
			deleted_at = EXCLUDED.deleted_at, is_settled = EXCLUDED.is_settled,
			settled_at = EXCLUDED.settled_at, approved_by = EXCLUDED.approved_by,
			approved_at = EXCLUDED.approved_at, rejected_by = EXCLUDED.rejected_by,
			rejected_at = EXCLUDED.rejected_at, updated_at = EXCLUDED.updated_at`,
		t.ID, t.Type, t.CategoryID, t.Content, t.Date,
		t.Quantity, t.UnitPrice.String(), t.Amount.String(), t.Partner, t.Receiver, attachments,
		t.Status, t.IsDeleted, t.DeletedAt, t.IsSettled, t.SettledAt,
		t.ApprovedBy, t.ApprovedAt, t.RejectedBy, t.RejectedAt,
		t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (s *pgStore) AddTransaction(t *Transaction) error    { return s.saveTransaction(t) }
func (s *pgStore) UpdateTransaction(t *Transaction) error { return s.saveTransaction(t) }

func (s *pgStore) DeleteTransaction(id string) error {
	_, err := s.pool.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	return err
}

func (s *pgStore) Categories() ([]Category, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, name, type FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *pgStore) Category(id string) (*Category, error) {
	var c Category
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, name, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *pgStore) AddCategory(c *Category) error {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO categories (id, name, type) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, type = EXCLUDED.type`,
		c.ID, c.Name, c.Type)
	return err
}

func (s *pgStore) UpdateCategory(c *Category) error { return s.AddCategory(c) }

func (s *pgStore) DeleteCategory(id string) error {
	_, err := s.pool.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (s *pgStore) Units() ([]Unit, error) {
	rows, err := s.pool.Query(context.Background(), `SELECT id, name FROM units ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Unit, 0)
	for rows.Next() {
		var u Unit
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *pgStore) Unit(id string) (*Unit, error) {
	var u Unit
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, name FROM units WHERE id = $1`, id).Scan(&u.ID, &u.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *pgStore) AddUnit(u *Unit) error {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO units (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		u.ID, u.Name)
	return err
}

func (s *pgStore) UpdateUnit(u *Unit) error { return s.AddUnit(u) }

func (s *pgStore) DeleteUnit(id string) error {
	_, err := s.pool.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	return err
}

func (s *pgStore) Partners() ([]Partner, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, name, type, phone FROM partners ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Partner, 0)
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Phone); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *pgStore) scanPartner(query string, arg any) (*Partner, error) {
	var p Partner
	err := s.pool.QueryRow(context.Background(), query, arg).
		Scan(&p.ID, &p.Name, &p.Type, &p.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *pgStore) Partner(id string) (*Partner, error) {
	return s.scanPartner(`SELECT id, name, type, phone FROM partners WHERE id = $1`, id)
}

func (s *pgStore) PartnerByName(name string) (*Partner, error) {
	return s.scanPartner(`SELECT id, name, type, phone FROM partners WHERE name = $1`, name)
}

func (s *pgStore) AddPartner(p *Partner) error {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO partners (id, name, type, phone) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, type = EXCLUDED.type, phone = EXCLUDED.phone`,
		p.ID, p.Name, p.Type, p.Phone)
	return err
}

func (s *pgStore) UpdatePartner(p *Partner) error { return s.AddPartner(p) }

func (s *pgStore) DeletePartner(id string) error {
	_, err := s.pool.Exec(context.Background(), `DELETE FROM partners WHERE id = $1`, id)
	return err
}

func (s *pgStore) Users() ([]User, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, email, full_name, role, password FROM users ORDER BY email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.Password); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *pgStore) scanUser(query string, arg any) (*User, error) {
	var u User
	err := s.pool.QueryRow(context.Background(), query, arg).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *pgStore) User(id string) (*User, error) {
	return s.scanUser(`SELECT id, email, full_name, role, password FROM users WHERE id = $1`, id)
}

func (s *pgStore) UserByEmail(email string) (*User, error) {
	return s.scanUser(`SELECT id, email, full_name, role, password FROM users WHERE email = $1`, email)
}

func (s *pgStore) AddUser(u *User) error {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO users (id, email, full_name, role, password) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email, full_name = EXCLUDED.full_name,
			role = EXCLUDED.role, password = EXCLUDED.password`,
		u.ID, u.Email, u.FullName, u.Role, u.Password)
	return err
}

func (s *pgStore) UpdateUser(u *User) error { return s.AddUser(u) }

func (s *pgStore) DeleteUser(id string) error {
	_, err := s.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (s *pgStore) Roles() ([]Role, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, name, description FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Role, 0)
	for rows.Next() {
		var r Role
		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *pgStore) Role(id string) (*Role, error) {
	var r Role
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, name, description FROM roles WHERE id = $1`, id).
		Scan(&r.ID, &r.Name, &r.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *pgStore) AddRole(r *Role) error {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO roles (id, name, description) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description`,
		r.ID, r.Name, r.Description)
	return err
}

func (s *pgStore) UpdateRole(r *Role) error { return s.AddRole(r) }

func (s *pgStore) DeleteRole(id string) error {
	// role_permissions cleans up via ON DELETE CASCADE
	_, err := s.pool.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	return err
}

func (s *pgStore) Permissions() ([]Permission, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, code, name, "group" FROM permissions ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Permission, 0)
	for rows.Next() {
		var p Permission
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Group); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *pgStore) AddPermission(p *Permission) error {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO permissions (id, code, name, "group") VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code, name = EXCLUDED.name, "group" = EXCLUDED."group"`,
		p.ID, p.Code, p.Name, p.Group)
	return err
}

func (s *pgStore) RolePermissions(roleID string) ([]RolePermission, error) {
	query := `SELECT role_id, permission_id FROM role_permissions`
	args := []any{}
	if roleID != "" {
		query += ` WHERE role_id = $1`
		args = append(args, roleID)
	}

	rows, err := s.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RolePermission, 0)
	for rows.Next() {
		var rp RolePermission
		if err := rows.Scan(&rp.RoleID, &rp.PermissionID); err != nil {
			return nil, err
		}
		out = append(out, rp)
	}
	return out, rows.Err()
}

// SetRolePermissions replaces the role's link set in one transaction, the
// same delete-then-insert the admin screen expects.
func (s *pgStore) SetRolePermissions(roleID string, permissionIDs []string) error {
	ctx := context.Background()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return err
	}
	for _, pid := range permissionIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`,
			roleID, pid); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
