package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skeptikoss/legalflow-ai-assistant/pkg/logger"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

type AdminHandler struct {
	caches   *service.Caches
	provider service.CompletionProvider
	started  time.Time
}

func NewAdminHandler(caches *service.Caches, provider service.CompletionProvider) *AdminHandler {
	return &AdminHandler{
		caches:   caches,
		provider: provider,
		started:  time.Now(),
	}
}

// Health reports process liveness, cache occupancy and whether the
// completion provider has credentials.
func (h *AdminHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"timestamp":           time.Now().UnixMilli(),
		"uptime_seconds":      int64(time.Since(h.started).Seconds()),
		"letter_cache_size":   h.caches.Letters.Len(),
		"document_cache_size": h.caches.Documents.Len(),
		"provider_configured": h.provider.Configured(),
	})
}

// ClearCache empties both artifact caches. Used between demo runs.
func (h *AdminHandler) ClearCache(c *gin.Context) {
	h.caches.Clear()

	logger.Info(c.Request.Context(), "artifact caches cleared")

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Cache cleared successfully",
		"timestamp": time.Now().UnixMilli(),
	})
}
