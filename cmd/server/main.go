package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nouss/hackaton-leaderboard/internal/api"
	"github.com/nouss/hackaton-leaderboard/internal/database"
	"github.com/nouss/hackaton-leaderboard/internal/logger"
	"github.com/nouss/hackaton-leaderboard/internal/middleware"
	"github.com/nouss/hackaton-leaderboard/pkg/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	appLogger := logger.NewSimpleLogger(cfg.IsDevelopment())

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()

	if err := r.SetTrustedProxies(cfg.GetTrustedProxies()); err != nil {
		log.Fatal("Failed to set trusted proxies:", err)
	}

	// Add middleware
	r.Use(middleware.LoggingMiddleware(appLogger))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.InputValidationMiddleware(cfg))

	// Add rate limiting in production
	if cfg.EnableRateLimit {
		r.Use(middleware.RateLimitingMiddleware())
	}

	// Add recovery middleware
	r.Use(gin.Recovery())

	// Setup API routes
	api.SetupRoutes(r, db, cfg, appLogger)

	// Start server
	appLogger.Info("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
