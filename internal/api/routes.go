package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nouss/hackaton-leaderboard/internal/database"
	"github.com/nouss/hackaton-leaderboard/internal/logger"
	"github.com/nouss/hackaton-leaderboard/internal/services"
	"github.com/nouss/hackaton-leaderboard/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config, log logger.Logger) {
	// Create centralized services
	svcs := services.NewServices(db, log)

	// Create handlers with proper service injection
	scoreHandler := NewScoreHandler(svcs.Score, cfg, log)
	healthHandler := NewHealthHandler(db)

	// Operational endpoints
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Score endpoints
	scores := r.Group("/api")
	{
		scores.POST("/scores", scoreHandler.CreateScore)
		scores.PUT("/scores", scoreHandler.UpdateScore)
		scores.GET("/scores", scoreHandler.GetAllScores)
		scores.GET("/scores/:id", scoreHandler.GetScore)
		scores.DELETE("/scores/:id", scoreHandler.DeleteScore)
	}
}
