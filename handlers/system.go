package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpaste/inkpaste/storage"
)

// SystemHandler handles system endpoints.
type SystemHandler struct {
	store storage.PasteStore
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(store storage.PasteStore) *SystemHandler {
	return &SystemHandler{
		store: store,
	}
}

// Health handles health check via GET /health.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "inkpaste",
	})
}
