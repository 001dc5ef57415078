package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const authCookie = "auth_token"

var jwtSecret []byte

func issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Log in
// @Description Authenticate with email and password, returns a bearer token and the resolved permission set
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Token, user profile and permissions"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := store.UserByEmail(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	ident, err := identityFor(store, user)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := issueToken(user.ID)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating session"})
		return
	}

	c.SetCookie(authCookie, token, int(24*time.Hour/time.Second), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"user":        user,
		"permissions": permissionCodes(ident),
	})
}

// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/auth/logout [post]
func logout(c *gin.Context) {
	c.SetCookie(authCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// @Summary Current user
// @Description Return the authenticated user and their resolved permissions
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "User profile and permissions"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /api/auth/me [get]
func currentUser(c *gin.Context) {
	ident := currentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       ident.UserID,
			"email":    ident.Email,
			"fullName": ident.FullName,
			"role":     ident.Role,
		},
		"permissions": permissionCodes(ident),
	})
}

func permissionCodes(ident *Identity) []string {
	codes := make([]string, 0, len(ident.Permissions))
	for code := range ident.Permissions {
		codes = append(codes, code)
	}
	return codes
}
