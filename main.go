package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/tracklite-api/api/v1"
	"github.com/tracklite-api/config"
	"github.com/tracklite-api/database"
	"github.com/tracklite-api/middleware"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Connect to database and migrate schema
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"},
		AllowCredentials: true,
	}))

	// Add API key middleware (disabled when TRACKLITE_API_KEY is unset)
	router.Use(middleware.APIKeyMiddleware())

	// Register v1 API routes
	v1.RegisterRoutes(router.Group("/api/v1"))

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 Tracklite API starting on port %s", port)
	log.Printf("💡 API Authentication: %s", func() string {
		if os.Getenv("TRACKLITE_API_KEY") != "" {
			return "Enabled"
		}
		return "Disabled (INSECURE)"
	}())
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
