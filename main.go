package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/config"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/database"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/middleware"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/routes"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/services"
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

	// Seed database with demo data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Middleware chain
	router.Use(routes.SetupCORS(cfg.AllowedOrigin))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateJSON())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	// Email service
	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	log.Printf("Starting MotoTech API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
