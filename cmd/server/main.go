package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"scribe/internal/api"
	"scribe/internal/config"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Warm the STT provider before accepting traffic so the first request
	// does not pay for model setup
	if err := api.Setup(cfg); err != nil {
		log.Fatalf("Failed to initialize STT provider: %v", err)
	}

	r := gin.Default()

	// Register routes
	api.RegisterRoutes(r)

	log.Printf("Transcription API running on :%s (model: %s)", cfg.Port, cfg.Model)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
