package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

type stubRenderer struct {
	calls int
	pdf   []byte
	err   error
}

func (r *stubRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.pdf, nil
}

func setupRenderRouter(renderer service.Renderer) (*gin.Engine, *service.Caches) {
	caches := service.NewCaches(5*time.Minute, 15*time.Minute)
	handler := NewRenderHandler(caches, renderer, nil)
	router := gin.New()
	router.POST("/render", handler.Render)
	router.POST("/pdf-preview", handler.Preview)
	return router, caches
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRenderMissingContent(t *testing.T) {
	router, _ := setupRenderRouter(&stubRenderer{pdf: []byte("%PDF-1.4")})

	w := postJSON(router, "/render", `{"clientName":"Acme"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["error"] != "No content provided" {
		t.Errorf("Unexpected error message: %q", response["error"])
	}
}

func TestRenderSuccess(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("%PDF-1.4 fake")}
	router, caches := setupRenderRouter(renderer)

	w := postJSON(router, "/render", `{"content":"Dear Acme, ...","clientName":"Acme Pte Ltd"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected application/pdf, got %q", ct)
	}

	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") ||
		!strings.Contains(disposition, "engagement-letter-acme-pte-ltd-") ||
		!strings.Contains(disposition, ".pdf") {
		t.Errorf("Unexpected disposition: %q", disposition)
	}

	if !bytes.Equal(w.Body.Bytes(), renderer.pdf) {
		t.Error("Expected rendered bytes in response body")
	}
	if caches.Documents.Len() != 1 {
		t.Errorf("Expected rendered document to be cached, got %d entries", caches.Documents.Len())
	}
}

func TestRenderServesCachedDocument(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("%PDF-1.4 fake")}
	router, _ := setupRenderRouter(renderer)

	body := `{"content":"Dear Acme, ...","clientName":"Acme Pte Ltd"}`
	for i := 0; i < 2; i++ {
		w := postJSON(router, "/render", body)
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected status 200, got %d", i+1, w.Code)
		}
	}

	if renderer.calls != 1 {
		t.Errorf("Expected 1 render across both requests, got %d", renderer.calls)
	}
}

func TestRenderDraftKeyedSeparately(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("%PDF-1.4 fake")}
	router, _ := setupRenderRouter(renderer)

	postJSON(router, "/render", `{"content":"Dear Acme","clientName":"Acme","isDraft":true}`)
	postJSON(router, "/render", `{"content":"Dear Acme","clientName":"Acme","isDraft":false}`)

	if renderer.calls != 2 {
		t.Errorf("Expected draft and final to render separately, got %d calls", renderer.calls)
	}
}

func TestRenderFailure(t *testing.T) {
	router, caches := setupRenderRouter(&stubRenderer{err: errors.New("browser crashed")})

	w := postJSON(router, "/render", `{"content":"Dear Acme","clientName":"Acme"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["error"] != "PDF generation failed" {
		t.Errorf("Unexpected error message: %q", response["error"])
	}
	if caches.Documents.Len() != 0 {
		t.Error("Expected nothing cached after a failed render")
	}
}

func TestPreview(t *testing.T) {
	router, _ := setupRenderRouter(&stubRenderer{pdf: []byte("unused")})

	w := postJSON(router, "/pdf-preview", `{"content":"preview text","clientName":"Acme","isDraft":true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Expected text/html, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "preview text") {
		t.Error("Expected content in preview body")
	}
	if !strings.Contains(w.Body.String(), "DRAFT VERSION") {
		t.Error("Expected draft badge in preview")
	}
}
