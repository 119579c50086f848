package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	req := httptest.NewRequest("GET", "/test?foo=bar", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	out := buf.String()
	if !strings.Contains(out, "request completed") {
		t.Error("Expected access log entry")
	}
	if !strings.Contains(out, "path=/test") {
		t.Errorf("Expected path in log, got: %s", out)
	}
	if !strings.Contains(out, "query=foo=bar") {
		t.Errorf("Expected query in log, got: %s", out)
	}

	// 4xx responses log at warn level
	buf.Reset()
	req = httptest.NewRequest("GET", "/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("Expected warn level for 404, got: %s", buf.String())
	}
}
