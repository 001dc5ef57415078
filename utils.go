package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validateID validates a caller-chosen master-data id (role ids, seeded ids).
func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id cannot be empty")
	}
	return nil
}

// respondError converts a workflow or store error to an HTTP response.
// Guard failures map onto 403/404/409; anything else is a backend failure
// and surfaces as 500 without retry.
func respondError(c *gin.Context, err error) {
	var le *LedgerError
	if errors.As(err, &le) {
		status := http.StatusInternalServerError
		switch le.Kind {
		case ErrPermissionDenied:
			status = http.StatusForbidden
		case ErrNotFound:
			status = http.StatusNotFound
		case ErrInvariantViolation:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": le.Reason})
		return
	}

	log.Printf("backend failure: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
