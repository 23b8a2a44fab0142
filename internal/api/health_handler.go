package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nouss/hackaton-leaderboard/internal/database"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth returns the service and database status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	if err := h.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "DOWN",
			"database":  "DOWN",
			"timestamp": time.Now(),
		})
		return
	}

	stats := h.db.GetStats()
	c.JSON(http.StatusOK, gin.H{
		"status":   "UP",
		"database": "UP",
		"connections": gin.H{
			"open":   stats.OpenConnections,
			"in_use": stats.InUse,
			"idle":   stats.Idle,
		},
		"timestamp": time.Now(),
	})
}
