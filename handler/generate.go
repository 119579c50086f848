package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skeptikoss/legalflow-ai-assistant/model"
	"github.com/skeptikoss/legalflow-ai-assistant/pkg/logger"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

type GenerateHandler struct {
	relay *service.Relay
}

func NewGenerateHandler(relay *service.Relay) *GenerateHandler {
	return &GenerateHandler{relay: relay}
}

// Generate streams the staged letter generation as server-sent events. Each
// relay frame becomes one "data: <JSON>" event; the stream closes after the
// terminal frame.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req model.LetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	emit := func(frame service.Frame) error {
		data, err := json.Marshal(frame)
		if err != nil {
			return fmt.Errorf("failed to marshal frame: %w", err)
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	ctx := c.Request.Context()
	if err := h.relay.Run(ctx, &req, emit); err != nil {
		// The stream is already committed; nothing more can be sent.
		logger.Debug(ctx, "generation relay ended early",
			"client", req.ClientName,
			"error", err,
		)
		return
	}

	logger.Info(ctx, "engagement letter generated",
		"client", req.ClientName,
		"transaction_type", req.TransactionType,
	)
}
