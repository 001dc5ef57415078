package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// File storage collaborator. Uploaded attachments land on local disk under
// uploadDir and are served back at /uploads/<name>; the transaction record
// only stores the resulting URL.

var uploadDir = "uploads"

// @Summary Upload attachment
// @Description Store an attachment file and return its public URL
// @Tags storage
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]interface{} "Stored file name, mime type and URL"
// @Failure 400 {object} map[string]interface{} "No file uploaded"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/uploads [post]
func uploadAttachment(c *gin.Context) {
	ident := currentIdentity(c)
	if !ident.Can(PermTransactionCreate) && !ident.Can(PermTransactionUpdate) {
		respondError(c, permissionDenied("you are not allowed to upload attachments"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		respondError(c, err)
		return
	}

	// Random name, original extension kept so the static server picks a
	// sensible content type.
	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst := filepath.Join(uploadDir, name)
	if err := c.SaveUploadedFile(header, dst); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"name":     header.Filename,
		"mimeType": header.Header.Get("Content-Type"),
		"url":      fmt.Sprintf("/uploads/%s", name),
	})
}
