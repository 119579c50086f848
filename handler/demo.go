package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

type DemoHandler struct {
	catalog *service.DemoCatalog
}

func NewDemoHandler(catalog *service.DemoCatalog) *DemoHandler {
	return &DemoHandler{catalog: catalog}
}

// Scenario returns the request fixture for a named demo scenario so the
// frontend can pre-fill its form.
func (h *DemoHandler) Scenario(c *gin.Context) {
	key := c.Param("scenario")

	scenario, ok := h.catalog.Scenario(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Demo scenario not found"})
		return
	}

	c.JSON(http.StatusOK, scenario)
}
