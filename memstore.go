package main

import (
	"sort"
	"sync"
)

// memStore is the in-memory Store. It backs the server when no database is
// configured (DB_HOST=memory) and the test suite. All methods copy records
// on the way in and out so callers never share state with the store.
type memStore struct {
	mu sync.RWMutex

	transactions map[string]Transaction
	categories   map[string]Category
	units        map[string]Unit
	partners     map[string]Partner
	users        map[string]User
	roles        map[string]Role
	permissions  map[string]Permission
	rolePerms    []RolePermission
}

func newMemStore() *memStore {
	return &memStore{
		transactions: make(map[string]Transaction),
		categories:   make(map[string]Category),
		units:        make(map[string]Unit),
		partners:     make(map[string]Partner),
		users:        make(map[string]User),
		roles:        make(map[string]Role),
		permissions:  make(map[string]Permission),
	}
}

func copyTransaction(t Transaction) Transaction {
	out := t
	if t.Attachments != nil {
		out.Attachments = append([]Attachment(nil), t.Attachments...)
	}
	return out
}

func (s *memStore) Transactions() ([]Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		out = append(out, copyTransaction(t))
	}
	// Newest first, matching the Postgres store's ORDER BY.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memStore) Transaction(id string) (*Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	t = copyTransaction(t)
	return &t, nil
}

func (s *memStore) AddTransaction(t *Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[t.ID] = copyTransaction(*t)
	return nil
}

func (s *memStore) UpdateTransaction(t *Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[t.ID] = copyTransaction(*t)
	return nil
}

func (s *memStore) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transactions, id)
	return nil
}

func (s *memStore) Categories() ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) Category(id string) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) AddCategory(c *Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = *c
	return nil
}

func (s *memStore) UpdateCategory(c *Category) error {
	return s.AddCategory(c)
}

func (s *memStore) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, id)
	return nil
}

func (s *memStore) Units() ([]Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Unit, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) Unit(id string) (*Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.units[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memStore) AddUnit(u *Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[u.ID] = *u
	return nil
}

func (s *memStore) UpdateUnit(u *Unit) error {
	return s.AddUnit(u)
}

func (s *memStore) DeleteUnit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.units, id)
	return nil
}

func (s *memStore) Partners() ([]Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Partner, 0, len(s.partners))
	for _, p := range s.partners {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) Partner(id string) (*Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.partners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memStore) PartnerByName(name string) (*Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.partners {
		if p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memStore) AddPartner(p *Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partners[p.ID] = *p
	return nil
}

func (s *memStore) UpdatePartner(p *Partner) error {
	return s.AddPartner(p)
}

func (s *memStore) DeletePartner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.partners, id)
	return nil
}

func (s *memStore) Users() ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s *memStore) User(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memStore) UserByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memStore) AddUser(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
	return nil
}

func (s *memStore) UpdateUser(u *User) error {
	return s.AddUser(u)
}

func (s *memStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

func (s *memStore) Roles() ([]Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) Role(id string) (*Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.roles[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *memStore) AddRole(r *Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[r.ID] = *r
	return nil
}

func (s *memStore) UpdateRole(r *Role) error {
	return s.AddRole(r)
}

func (s *memStore) DeleteRole(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roles, id)
	links := s.rolePerms[:0]
	for _, rp := range s.rolePerms {
		if rp.RoleID != id {
			links = append(links, rp)
		}
	}
	s.rolePerms = links
	return nil
}

func (s *memStore) Permissions() ([]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Permission, 0, len(s.permissions))
	for _, p := range s.permissions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *memStore) AddPermission(p *Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions[p.ID] = *p
	return nil
}

func (s *memStore) RolePermissions(roleID string) ([]RolePermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RolePermission, 0, len(s.rolePerms))
	for _, rp := range s.rolePerms {
		if roleID == "" || rp.RoleID == roleID {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (s *memStore) SetRolePermissions(roleID string, permissionIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := s.rolePerms[:0]
	for _, rp := range s.rolePerms {
		if rp.RoleID != roleID {
			links = append(links, rp)
		}
	}
	for _, pid := range permissionIDs {
		links = append(links, RolePermission{RoleID: roleID, PermissionID: pid})
	}
	s.rolePerms = links
	return nil
}
