package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clearfolio/fund-catalog-backend/internal/api/handlers"
	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
	"github.com/clearfolio/fund-catalog-backend/internal/testutil"
)

func TestProviderHandler_Create(t *testing.T) {
	t.Run("creates a provider and never echoes the api key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/data-providers", request.CreateProviderRequest{
			Name:    "AMFI Feed",
			APIKey:  "plain-secret",
			BaseURL: "https://feed.example.com/api",
		})
		w := httptest.NewRecorder()

		handler.Create(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		body := w.Body.String()
		if strings.Contains(body, "api_key") || strings.Contains(body, "plain-secret") {
			t.Error("Expected response body to omit credential material")
		}

		var created model.DataProvider
		if err := json.Unmarshal([]byte(body), &created); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if created.Name != "AMFI Feed" {
			t.Errorf("Expected name AMFI Feed, got %s", created.Name)
		}
		if !created.IsActive {
			t.Error("Expected new provider to be active by default")
		}
	})

	t.Run("rejects invalid input with field messages", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/data-providers", request.CreateProviderRequest{
			Name:    "",
			APIKey:  "",
			BaseURL: "ftp://feed.example.com",
		})
		w := httptest.NewRecorder()

		handler.Create(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}

		var resp struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		testutil.DecodeJSON(t, w, &resp)
		if resp.Details["name"] == "" || resp.Details["api_key"] == "" || resp.Details["base_url"] == "" {
			t.Errorf("Expected per-field messages, got %v", resp.Details)
		}
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/data-providers", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestProviderHandler_Get(t *testing.T) {
	t.Run("returns the provider without its key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

		p := testutil.NewProvider().WithName("Feed One").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/data-providers/"+p.ID,
			map[string]string{"providerId": p.ID})
		w := httptest.NewRecorder()

		handler.Get(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "api_key") {
			t.Error("Expected response to omit the api_key field")
		}

		var got model.DataProvider
		testutil.DecodeJSON(t, w, &got)
		if got.ID != p.ID || got.Name != "Feed One" {
			t.Errorf("Expected provider %s, got %+v", p.ID, got)
		}
	})

	t.Run("unknown provider yields 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/data-providers/"+id,
			map[string]string{"providerId": id})
		w := httptest.NewRecorder()

		handler.Get(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestProviderHandler_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

	testutil.NewProvider().WithName("Beta Feed").Build(t, db)
	testutil.NewProvider().WithName("Alpha Feed").Inactive().Build(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/data-providers", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var providers []model.DataProvider
	testutil.DecodeJSON(t, w, &providers)
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name != "Alpha Feed" || providers[1].Name != "Beta Feed" {
		t.Errorf("Expected name ordering, got %v", providers)
	}
}

func TestProviderHandler_Update(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

		p := testutil.NewProvider().WithName("Old Name").Build(t, db)

		name := "New Name"
		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/data-providers/"+p.ID,
			map[string]string{"providerId": p.ID},
			request.UpdateProviderRequest{Name: &name})
		w := httptest.NewRecorder()

		handler.Update(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.DataProvider
		testutil.DecodeJSON(t, w, &got)
		if got.Name != "New Name" {
			t.Errorf("Expected renamed provider, got %s", got.Name)
		}
	})

	t.Run("unknown provider yields 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

		id := testutil.MakeID()
		name := "Name"
		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/data-providers/"+id,
			map[string]string{"providerId": id},
			request.UpdateProviderRequest{Name: &name})
		w := httptest.NewRecorder()

		handler.Update(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestProviderHandler_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewProviderHandler(testutil.NewTestProviderService(t, db))

	p := testutil.NewProvider().Build(t, db)

	req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/data-providers/"+p.ID,
		map[string]string{"providerId": p.ID})
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.Delete(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on repeat delete, got %d", w.Code)
	}
}
