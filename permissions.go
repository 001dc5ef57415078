package main

// PermissionSet is the resolved set of permission codes for one session.
type PermissionSet map[string]struct{}

func (ps PermissionSet) Has(code string) bool {
	_, ok := ps[code]
	return ok
}

// Identity is the request-scoped actor passed into every workflow call. It is
// resolved once per request when the token is checked, never cached, so role
// edits take effect on the next request.
type Identity struct {
	UserID      string
	Email       string
	FullName    string
	Role        string
	Permissions PermissionSet
}

func (id *Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// Can reports whether the actor holds a permission code. Admin holds
// everything unconditionally.
func (id *Identity) Can(code string) bool {
	if id.IsAdmin() {
		return true
	}
	return id.Permissions.Has(code)
}

// resolvePermissions walks role -> role_permissions -> permissions and
// returns the role's permission-code set.
func resolvePermissions(store Store, roleID string) (PermissionSet, error) {
	links, err := store.RolePermissions(roleID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]string) // permission id -> code
	perms, err := store.Permissions()
	if err != nil {
		return nil, err
	}
	for _, p := range perms {
		byID[p.ID] = p.Code
	}

	set := make(PermissionSet)
	for _, link := range links {
		if code, ok := byID[link.PermissionID]; ok {
			set[code] = struct{}{}
		}
	}
	return set, nil
}

// identityFor builds the Identity for a user, resolving the permission set
// from the current role tables.
func identityFor(store Store, u *User) (*Identity, error) {
	perms, err := resolvePermissions(store, u.Role)
	if err != nil {
		return nil, err
	}
	return &Identity{
		UserID:      u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		Permissions: perms,
	}, nil
}
