package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const testOpenAPI = `openapi: 3.0.3
info:
  title: YouthWell API
paths:
  /api/chat:
    post:
      responses:
        '200':
          description: ok
`

func TestOpenAPIHandler(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(path, []byte(testOpenAPI), 0o600); err != nil {
		t.Fatalf("Failed to write spec: %v", err)
	}

	r := mux.NewRouter()
	NewOpenAPIHandler(path, zap.NewNop()).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/openapi.yaml", nil))
	if w.Code != http.StatusOK || w.Body.String() != testOpenAPI {
		t.Errorf("Unexpected YAML response %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/openapi.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}
	if doc["openapi"] != "3.0.3" {
		t.Errorf("Expected openapi 3.0.3, got %v", doc["openapi"])
	}
}

func TestOpenAPIHandler_Missing(t *testing.T) {
	t.Parallel()

	h := NewOpenAPIHandler(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	w := httptest.NewRecorder()
	h.ServeJSON(w, httptest.NewRequest("GET", "/api/openapi.json", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
