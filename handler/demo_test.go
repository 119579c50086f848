package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

func setupDemoRouter() *gin.Engine {
	router := gin.New()
	router.GET("/demo/:scenario", NewDemoHandler(service.NewDemoCatalog()).Scenario)
	return router
}

func TestDemoScenario(t *testing.T) {
	router := setupDemoRouter()

	req := httptest.NewRequest("GET", "/demo/techAcquisition", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["clientName"] != "TechVentures Pte Ltd" {
		t.Errorf("Unexpected client name: %v", response["clientName"])
	}
	if response["sampleContent"] == "" {
		t.Error("Expected sample content in scenario")
	}
}

func TestDemoScenarioNotFound(t *testing.T) {
	router := setupDemoRouter()

	req := httptest.NewRequest("GET", "/demo/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["error"] != "Demo scenario not found" {
		t.Errorf("Unexpected error message: %q", response["error"])
	}
}
