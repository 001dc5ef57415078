package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RBAC administration handlers: users, roles and the permission catalog.
// Everything here is gated by SYSTEM_MANAGE.

func requireSystemManage(c *gin.Context) bool {
	if !currentIdentity(c).Can(PermSystemManage) {
		respondError(c, permissionDenied("you are not allowed to administer the system"))
		return false
	}
	return true
}

// @Summary List users
// @Tags rbac
// @Produce json
// @Success 200 {array} User "List of users"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/users [get]
func getUsers(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}
	users, err := store.Users()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type userRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role" binding:"required"`
}

// @Summary Create user
// @Tags rbac
// @Accept json
// @Produce json
// @Param user body userRequest true "User data"
// @Success 201 {object} User "Created user"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/users [post]
func createUser(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}
	role, err := store.Role(req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	if role == nil {
		respondError(c, notFound("role not found"))
		return
	}
	existing, err := store.UserByEmail(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user := User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Password: string(hash),
	}
	if err := store.AddUser(&user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Update user
// @Description Update profile and role; password only changes when one is supplied.
// @Tags rbac
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body userRequest true "Updated user data"
// @Success 200 {object} User "Updated user"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/users/{id} [put]
func updateUser(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := store.User(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondError(c, notFound("user not found"))
		return
	}
	role, err := store.Role(req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	if role == nil {
		respondError(c, notFound("role not found"))
		return
	}

	user.Email = req.Email
	user.FullName = req.FullName
	user.Role = req.Role
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, err)
			return
		}
		user.Password = string(hash)
	}

	if err := store.UpdateUser(user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Delete user
// @Tags rbac
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "User deleted"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/users/{id} [delete]
func deleteUser(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}

	id := c.Param("id")
	user, err := store.User(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondError(c, notFound("user not found"))
		return
	}

	if err := store.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

type roleResponse struct {
	Role
	PermissionIDs []string `json:"permissionIds"`
}

// @Summary List roles
// @Description List roles with their assigned permission ids
// @Tags rbac
// @Produce json
// @Success 200 {array} roleResponse "List of roles"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/roles [get]
func getRoles(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}

	roles, err := store.Roles()
	if err != nil {
		respondError(c, err)
		return
	}
	links, err := store.RolePermissions("")
	if err != nil {
		respondError(c, err)
		return
	}
	byRole := make(map[string][]string)
	for _, link := range links {
		byRole[link.RoleID] = append(byRole[link.RoleID], link.PermissionID)
	}

	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		ids := byRole[r.ID]
		if ids == nil {
			ids = []string{}
		}
		out = append(out, roleResponse{Role: r, PermissionIDs: ids})
	}
	c.JSON(http.StatusOK, out)
}

type roleRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PermissionIDs []string `json:"permissionIds"`
}

// @Summary Create role
// @Description Create a role and assign its permission set
// @Tags rbac
// @Accept json
// @Produce json
// @Param role body roleRequest true "Role data"
// @Success 201 {object} roleResponse "Created role"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/roles [post]
func createRole(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}

	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateID(req.ID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := Role{ID: req.ID, Name: req.Name, Description: req.Description}
	if err := store.AddRole(&role); err != nil {
		respondError(c, err)
		return
	}
	if err := store.SetRolePermissions(role.ID, req.PermissionIDs); err != nil {
		respondError(c, err)
		return
	}

	ids := req.PermissionIDs
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusCreated, roleResponse{Role: role, PermissionIDs: ids})
}

// @Summary Update role
// @Description Update a role; its permission link set is replaced wholesale.
// @Tags rbac
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param role body roleRequest true "Updated role data"
// @Success 200 {object} roleResponse "Updated role"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Router /api/roles/{id} [put]
func updateRole(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}

	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id := c.Param("id")
	existing, err := store.Role(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("role not found"))
		return
	}

	role := Role{ID: id, Name: req.Name, Description: req.Description}
	if err := store.UpdateRole(&role); err != nil {
		respondError(c, err)
		return
	}
	if err := store.SetRolePermissions(id, req.PermissionIDs); err != nil {
		respondError(c, err)
		return
	}

	ids := req.PermissionIDs
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, roleResponse{Role: role, PermissionIDs: ids})
}

// @Summary Delete role
// @Description Delete a role and its permission links. The built-in admin role cannot be deleted.
// @Tags rbac
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} map[string]interface{} "Role deleted"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 409 {object} map[string]interface{} "Admin role cannot be deleted"
// @Router /api/roles/{id} [delete]
func deleteRole(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}

	id := c.Param("id")
	if id == RoleAdmin {
		respondError(c, invariantViolation("the admin role cannot be deleted"))
		return
	}
	existing, err := store.Role(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("role not found"))
		return
	}

	if err := store.DeleteRole(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role deleted"})
}

// @Summary List permissions
// @Description List the permission catalog, grouped for the role editor
// @Tags rbac
// @Produce json
// @Success 200 {array} Permission "List of permissions"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/permissions [get]
func getPermissions(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}
	permissions, err := store.Permissions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}

// @Summary Seed system data
// @Description Upsert the default permission catalog, roles, master data and accounts. Idempotent.
// @Tags rbac
// @Produce json
// @Success 200 {object} map[string]interface{} "Seed completed"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/admin/seed [post]
func seedSystemData(c *gin.Context) {
	if !requireSystemManage(c) {
		return
	}
	if err := seedDefaults(store); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seed completed"})
}
