package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var testRouter *gin.Engine

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	// Set gin to test mode
	gin.SetMode(gin.TestMode)

	jwtSecret = []byte("test-secret")

	dir, err := os.MkdirTemp("", "thuchi-uploads")
	if err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}
	uploadDir = dir

	resetTestData()
	testRouter = setupRouter()

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// resetTestData replaces the store with a freshly seeded in-memory one. The
// handlers read the package globals on every request, so the router built in
// TestMain keeps working across resets.
func resetTestData() {
	store = newMemStore()
	if err := seedDefaults(store); err != nil {
		log.Fatalf("Failed to seed test data: %v", err)
	}
	wf = NewWorkflow(store)
}

// loginAs logs in a seeded account and returns its bearer token. All seeded
// accounts use the default password.
func loginAs(t *testing.T, email string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": "123"})
	resp := makeRequest("POST", "/api/auth/login", "", bytes.NewBuffer(body))
	if resp.Code != http.StatusOK {
		t.Fatalf("Login as %s failed with status %d: %s", email, resp.Code, resp.Body.String())
	}

	var result map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse login response: %v", err)
	}
	token, ok := result["token"].(string)
	if !ok || token == "" {
		t.Fatal("Expected token in login response")
	}
	return token
}

func loginAsAdmin(t *testing.T) string      { return loginAs(t, "admin@thuchi.local") }
func loginAsAccountant(t *testing.T) string { return loginAs(t, "manager@thuchi.local") }
func loginAsEmployee(t *testing.T) string   { return loginAs(t, "staff@thuchi.local") }

// makeRequest helper function for making HTTP requests
func makeRequest(method, url, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeJSONRequest marshals the payload and sends it
func makeJSONRequest(t *testing.T, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return makeRequest(method, url, token, bytes.NewBuffer(body))
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// transactionPayload returns a valid create request body. Overrides are
// applied on top of the defaults.
func transactionPayload(overrides map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"type":       TypeExpense,
		"categoryId": "cat_food",
		"content":    "Team lunch",
		"date":       "2025-03-10",
		"quantity":   1,
		"unitPrice":  "150000",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

// createTestTransaction creates a transaction through the API and returns it
func createTestTransaction(t *testing.T, token string, overrides map[string]interface{}) Transaction {
	t.Helper()

	resp := makeJSONRequest(t, "POST", "/api/transactions", token, transactionPayload(overrides))
	if resp.Code != http.StatusCreated {
		t.Fatalf("Failed to create test transaction, status %d: %s", resp.Code, resp.Body.String())
	}

	var created Transaction
	if err := parseJSONResponse(resp, &created); err != nil {
		t.Fatalf("Failed to parse created transaction: %v", err)
	}
	return created
}

// approveTestTransaction approves a transaction as the accountant
func approveTestTransaction(t *testing.T, id string) Transaction {
	t.Helper()

	token := loginAsAccountant(t)
	resp := makeRequest("POST", fmt.Sprintf("/api/transactions/%s/approve", id), token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("Failed to approve transaction, status %d: %s", resp.Code, resp.Body.String())
	}

	var approved Transaction
	if err := parseJSONResponse(resp, &approved); err != nil {
		t.Fatalf("Failed to parse approved transaction: %v", err)
	}
	return approved
}

// assertDecimalEqual compares a decimal against its expected string form
func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	if !actual.Equal(decimal.RequireFromString(expected)) {
		t.Errorf("Expected %s, got %s", expected, actual.String())
	}
}
