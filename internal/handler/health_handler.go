package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/internal/repository/postgres"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	acc *postgres.Accessor
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(acc *postgres.Accessor) *HealthHandler {
	return &HealthHandler{acc: acc}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. A service without a configured store is
// still ready; it serves empty content.
func (h *HealthHandler) Readiness(c *gin.Context) {
	db, ok := h.acc.DB()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "not configured"})
		return
	}
	if err := db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "ok"})
}
