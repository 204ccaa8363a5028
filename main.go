// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bloom-api/config"
	"bloom-api/database"
	"bloom-api/middleware"
	"bloom-api/routes"
	"bloom-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the initial campus clubs (idempotent)
	if err := database.SeedClubs(db); err != nil {
		log.Printf("Warning: Failed to seed clubs: %v", err)
	}

	// Services
	emailService := services.NewEmailService(cfg)
	pictureStore, err := services.NewPictureStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize picture storage:", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Wrong verb on an action endpoint must be a 405, not a 404
	router.HandleMethodNotAllowed = true

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Request logging middleware
	router.Use(gin.Logger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, pictureStore)

	// Start server
	log.Printf("Starting Bloom API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
