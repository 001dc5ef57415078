package main

import (
	"net/http"
	"testing"
)

// TestCategories tests the /api/categories endpoints
func TestCategories(t *testing.T) {
	resetTestData()
	accountantToken := loginAsAccountant(t)
	staffToken := loginAsEmployee(t)

	t.Run("everyone authenticated can list categories", func(t *testing.T) {
		resp := makeRequest("GET", "/api/categories", staffToken, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var categories []Category
		assertNoError(t, parseJSONResponse(resp, &categories))

		if len(categories) != len(defaultCategories) {
			t.Errorf("Expected %d categories, got %d", len(defaultCategories), len(categories))
		}
	})

	t.Run("mutations require MASTER_DATA_MANAGE", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/categories", staffToken, map[string]string{
			"name": "Khác",
			"type": TypeExpense,
		})
		assertStatusCode(t, http.StatusForbidden, resp.Code)
	})

	t.Run("accountant can create, update and delete a category", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/categories", accountantToken, map[string]string{
			"name": "Khác",
			"type": TypeExpense,
		})
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var created Category
		assertNoError(t, parseJSONResponse(resp, &created))
		if created.ID == "" {
			t.Fatal("Expected a generated id")
		}

		resp = makeJSONRequest(t, "PUT", "/api/categories/"+created.ID, accountantToken, map[string]string{
			"name": "Chi phí khác",
			"type": TypeExpense,
		})
		assertStatusCode(t, http.StatusOK, resp.Code)

		resp = makeRequest("DELETE", "/api/categories/"+created.ID, accountantToken, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		resp = makeRequest("DELETE", "/api/categories/"+created.ID, accountantToken, nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("category type must be income or expense", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/categories", accountantToken, map[string]string{
			"name": "Sai loại",
			"type": "transfer",
		})
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/categories", accountantToken, map[string]string{
			"name": "   ",
			"type": TypeIncome,
		})
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestUnits tests the /api/units endpoints
func TestUnits(t *testing.T) {
	resetTestData()
	accountantToken := loginAsAccountant(t)

	t.Run("unit lifecycle", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/units", accountantToken, map[string]string{
			"name": "Thùng",
		})
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var created Unit
		assertNoError(t, parseJSONResponse(resp, &created))

		resp = makeJSONRequest(t, "PUT", "/api/units/"+created.ID, accountantToken, map[string]string{
			"name": "Thùng lớn",
		})
		assertStatusCode(t, http.StatusOK, resp.Code)

		resp = makeRequest("DELETE", "/api/units/"+created.ID, accountantToken, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)
	})

	t.Run("updating a missing unit is a 404", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/units/nope", accountantToken, map[string]string{
			"name": "Ghost",
		})
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

// TestPartners tests the /api/partners endpoints
func TestPartners(t *testing.T) {
	resetTestData()
	accountantToken := loginAsAccountant(t)

	t.Run("partner type is validated", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/partners", accountantToken, map[string]string{
			"name": "Đối tác mới",
			"type": "vendor",
		})
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("a typeless partner is allowed", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/partners", accountantToken, map[string]string{
			"name": "Đối tác tự do",
		})
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var created Partner
		assertNoError(t, parseJSONResponse(resp, &created))
		if created.Type != "" {
			t.Errorf("Expected empty type, got %q", created.Type)
		}
	})

	t.Run("partner lifecycle", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/partners", accountantToken, map[string]string{
			"name":  "Nhà cung cấp X",
			"type":  PartnerSupplier,
			"phone": "0900000000",
		})
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var created Partner
		assertNoError(t, parseJSONResponse(resp, &created))

		resp = makeJSONRequest(t, "PUT", "/api/partners/"+created.ID, accountantToken, map[string]string{
			"name": "Nhà cung cấp X",
			"type": PartnerBoth,
		})
		assertStatusCode(t, http.StatusOK, resp.Code)

		resp = makeRequest("DELETE", "/api/partners/"+created.ID, accountantToken, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)
	})
}
