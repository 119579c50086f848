package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skeptikoss/legalflow-ai-assistant/model"
	"github.com/skeptikoss/legalflow-ai-assistant/pkg/logger"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

type RenderHandler struct {
	documents *service.ArtifactCache
	renderer  service.Renderer
	archive   *service.ArchiveService
}

// NewRenderHandler wires the PDF pipeline. archive may be nil; archiving is
// an optional extra.
func NewRenderHandler(caches *service.Caches, renderer service.Renderer, archive *service.ArchiveService) *RenderHandler {
	return &RenderHandler{
		documents: caches.Documents,
		renderer:  renderer,
		archive:   archive,
	}
}

// Render prints a generated letter to PDF. Rendered documents are cached on
// a digest of the content, so re-downloading a letter within the TTL skips
// the headless browser entirely.
func (h *RenderHandler) Render(c *gin.Context) {
	var req model.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No content provided"})
		return
	}

	ctx := c.Request.Context()

	fingerprint, err := service.DocumentFingerprint(req.Content, req.ClientName, req.IsDraft)
	if err != nil {
		logger.Error(ctx, "failed to fingerprint document", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed"})
		return
	}

	if pdf, ok := h.documents.Get(fingerprint); ok {
		h.sendPDF(c, req.ClientName, pdf)
		return
	}

	html, err := service.LetterHTML(req.Content, req.IsDraft)
	if err != nil {
		logger.Error(ctx, "failed to build letter document", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed"})
		return
	}

	pdf, err := h.renderer.Render(ctx, html)
	if err != nil {
		logger.Error(ctx, "failed to render PDF", "client", req.ClientName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed"})
		return
	}

	h.documents.Put(fingerprint, pdf)

	if h.archive != nil && !req.IsDraft {
		objectName := fmt.Sprintf("letters/%s", documentFilename(req.ClientName))
		if url, err := h.archive.Store(ctx, objectName, pdf); err != nil {
			logger.Warn(ctx, "failed to archive rendered letter", "error", err)
		} else {
			logger.Info(ctx, "rendered letter archived", "url", url)
		}
	}

	h.sendPDF(c, req.ClientName, pdf)
}

// Preview returns the web-styled HTML version of a letter for in-browser
// display, without invoking the renderer.
func (h *RenderHandler) Preview(c *gin.Context) {
	var req model.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No content provided"})
		return
	}

	html, err := service.PreviewHTML(req.Content, req.IsDraft)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to build preview document", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Preview generation failed"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *RenderHandler) sendPDF(c *gin.Context, clientName string, pdf []byte) {
	disposition := fmt.Sprintf("attachment; filename=%q", documentFilename(clientName))
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

// documentFilename derives a download name from the client name plus a
// timestamp for uniqueness.
func documentFilename(clientName string) string {
	slug := strings.ToLower(strings.TrimSpace(clientName))
	slug = filenameUnsafe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "client"
	}
	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("engagement-letter-%s-%s.pdf", slug, timestamp)
}
