package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/local-directory-api/internal/api"
	"github.com/local-directory-api/internal/config"
	"github.com/local-directory-api/internal/mocks"
	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/service"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *mocks.MockDirectoryService, *mocks.MockIntegrityService, *mocks.MockMaintenanceService) {
	gin.SetMode(gin.TestMode)

	mockDirectory := mocks.NewMockDirectoryService()
	mockIntegrity := mocks.NewMockIntegrityService()
	mockMaintenance := mocks.NewMockMaintenanceService()

	services := &service.Services{
		Directory:   mockDirectory,
		Integrity:   mockIntegrity,
		Maintenance: mockMaintenance,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Site: config.SiteConfig{
			BaseURL:     "https://example.com",
			NichePrefix: "boarding-kennels",
		},
		Auth: config.AuthConfig{
			AdminUser:     "admin",
			AdminPassword: "hunter2",
			JWTSecret:     "test-secret",
			TokenTTL:      time.Hour,
		},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, cfg, log)

	return router, mockDirectory, mockIntegrity, mockMaintenance
}

// adminToken logs in with the shared credential and returns a bearer token
func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "hunter2"})
	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", w.Code, w.Body.String())
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["token"] == "" {
		t.Fatal("Login returned no token")
	}
	return response["token"]
}

func authedRequest(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("Failed to encode payload: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, router))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "local-directory-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestNicheRedirectThroughFullRouter(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/boarding-kennels-newcastle", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("Expected status 301, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/city/newcastle" {
		t.Errorf("Expected redirect to /city/newcastle, got %s", loc)
	}
}

func TestRedirectAboutArticles(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	tests := []struct {
		name         string
		query        string
		wantStatus   int
		wantLocation string
	}{
		{"legacy slug redirects to root", "?slug=about-foo", http.StatusMovedPermanently, "/"},
		{"regular slug is not found", "?slug=regular-article", http.StatusNotFound, ""},
		{"missing slug is not found", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/redirect-about-articles"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantLocation != "" {
				if loc := w.Header().Get("Location"); loc != tt.wantLocation {
					t.Errorf("Expected location %s, got %s", tt.wantLocation, loc)
				}
			}
			if tt.wantStatus == http.StatusNotFound {
				var response map[string]string
				json.Unmarshal(w.Body.Bytes(), &response)
				if response["error"] != "Not found" {
					t.Errorf("Expected error 'Not found', got %v", response["error"])
				}
			}
		})
	}
}

func TestCreateStateRequiresAuth(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	body, _ := json.Marshal(map[string]string{"name": "Texas"})
	req := httptest.NewRequest("POST", "/api/states", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestCreateStateValidation(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	w := authedRequest(t, router, "POST", "/api/states", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "State name is required" {
		t.Errorf("Expected 'State name is required', got %v", response["error"])
	}
}

func TestCreateState(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	w := authedRequest(t, router, "POST", "/api/states", map[string]string{"name": "Texas"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var state models.State
	json.Unmarshal(w.Body.Bytes(), &state)
	if state.Name != "Texas" {
		t.Errorf("Expected state name Texas, got %s", state.Name)
	}
}

func TestBulkCreateStates(t *testing.T) {
	router, _, _, mockMaintenance := setupTestRouter()
	mockMaintenance.Created = []*models.State{
		{ID: "s1", Name: "Texas"},
		{ID: "s2", Name: "California"},
	}

	w := authedRequest(t, router, "POST", "/api/states/bulk",
		map[string][]string{"states": {"Texas", " Texas ", "", "California"}})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["created"].(float64) != 2 {
		t.Errorf("Expected 2 created, got %v", response["created"])
	}
}

func TestBulkCreateStatesEmptySet(t *testing.T) {
	router, _, _, mockMaintenance := setupTestRouter()
	mockMaintenance.Created = nil

	w := authedRequest(t, router, "POST", "/api/states/bulk",
		map[string][]string{"states": {"  ", ""}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for empty valid set, got %d", w.Code)
	}
}

func TestGetAboutURLs(t *testing.T) {
	router, _, _, mockMaintenance := setupTestRouter()
	mockMaintenance.URLs = []string{
		"https://example.com/about-history",
		"https://example.com/about-team",
	}

	w := authedRequest(t, router, "GET", "/api/admin/get-about-urls", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
	if response["count"].(float64) != 2 {
		t.Errorf("Expected count 2, got %v", response["count"])
	}
}

func TestBulkRemoveURLs(t *testing.T) {
	router, _, _, mockMaintenance := setupTestRouter()
	mockMaintenance.RemovedCount = 7

	w := authedRequest(t, router, "POST", "/api/admin/bulk-remove-urls", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["deleted"].(float64) != 7 {
		t.Errorf("Expected 7 deleted, got %v", response["deleted"])
	}

	// Immediate rerun affects nothing
	w = authedRequest(t, router, "POST", "/api/admin/bulk-remove-urls", nil)
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["deleted"].(float64) != 0 {
		t.Errorf("Expected 0 deleted on rerun, got %v", response["deleted"])
	}
}

func TestBulkRemoveURLsStoreFailure(t *testing.T) {
	router, _, _, mockMaintenance := setupTestRouter()
	mockMaintenance.Err = errors.New("pq: connection refused")

	w := authedRequest(t, router, "POST", "/api/admin/bulk-remove-urls", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "Database error" {
		t.Errorf("Expected stable error message, got %v", response["error"])
	}
	if response["details"] != "pq: connection refused" {
		t.Errorf("Expected store detail passed through, got %v", response["details"])
	}
}

func TestGetCityPage(t *testing.T) {
	router, mockDirectory, _, _ := setupTestRouter()
	mockDirectory.CityPages["newcastle"] = &models.CityPage{
		City: &models.City{ID: "c1", Name: "Newcastle", StateID: "s1"},
		Listings: []*models.Listing{
			{ID: "l1", Business: "Happy Paws", CityID: "c1"},
		},
	}

	req := httptest.NewRequest("GET", "/city/newcastle", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var page models.CityPage
	json.Unmarshal(w.Body.Bytes(), &page)
	if page.City == nil || page.City.Name != "Newcastle" {
		t.Errorf("Expected Newcastle city page, got %+v", page.City)
	}
	if len(page.Listings) != 1 {
		t.Errorf("Expected 1 listing, got %d", len(page.Listings))
	}
}

func TestGetCityPageNotFound(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/city/atlantis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestIntegrityReportEndpoint(t *testing.T) {
	router, _, mockIntegrity, _ := setupTestRouter()
	mockIntegrity.Reports = &models.IntegrityReport{
		OrphanCities: []*models.City{{ID: "c9", Name: "Ghost Town", StateID: "missing"}},
		OrphanArticles: models.OrphanArticleSection{
			Checked: false,
			Reason:  "articles.city_id column not present on this store",
		},
		GeneratedAt: time.Now(),
	}

	w := authedRequest(t, router, "GET", "/api/admin/integrity", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var report models.IntegrityReport
	json.Unmarshal(w.Body.Bytes(), &report)
	if len(report.OrphanCities) != 1 {
		t.Errorf("Expected 1 orphan city, got %d", len(report.OrphanCities))
	}
	if report.OrphanArticles.Checked {
		t.Error("Expected article section to be marked skipped")
	}
}
