package main

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeUploadRequest posts a multipart file to /api/uploads
func makeUploadRequest(t *testing.T, token, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest("POST", "/api/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)
	return recorder
}

// TestUploadAttachment tests POST /api/uploads
func TestUploadAttachment(t *testing.T) {
	resetTestData()
	staffToken := loginAsEmployee(t)

	t.Run("upload stores the file and returns its URL", func(t *testing.T) {
		resp := makeUploadRequest(t, staffToken, "receipt.pdf", []byte("%PDF-1.4 fake"))
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var result struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		}
		assertNoError(t, parseJSONResponse(resp, &result))

		if result.Name != "receipt.pdf" {
			t.Errorf("Expected original file name, got %q", result.Name)
		}
		if !strings.HasPrefix(result.URL, "/uploads/") || !strings.HasSuffix(result.URL, ".pdf") {
			t.Errorf("Unexpected URL: %q", result.URL)
		}

		// The bytes must be on disk under the upload dir.
		stored := filepath.Join(uploadDir, strings.TrimPrefix(result.URL, "/uploads/"))
		data, err := os.ReadFile(stored)
		assertNoError(t, err)
		if string(data) != "%PDF-1.4 fake" {
			t.Error("Stored file content does not match the upload")
		}
	})

	t.Run("missing file is a bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/uploads", bytes.NewBufferString(""))
		req.Header.Set("Authorization", "Bearer "+staffToken)

		recorder := httptest.NewRecorder()
		testRouter.ServeHTTP(recorder, req)
		assertStatusCode(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("attachments ride along on a created transaction", func(t *testing.T) {
		resp := makeUploadRequest(t, staffToken, "invoice.png", []byte{0x89, 0x50, 0x4e, 0x47})
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var uploaded Attachment
		assertNoError(t, parseJSONResponse(resp, &uploaded))

		tx := createTestTransaction(t, staffToken, map[string]interface{}{
			"attachments": []Attachment{uploaded},
		})

		if len(tx.Attachments) != 1 || tx.Attachments[0].URL != uploaded.URL {
			t.Errorf("Expected the attachment on the transaction, got %v", tx.Attachments)
		}
	})
}
