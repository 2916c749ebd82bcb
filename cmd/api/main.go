package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mattwebdev/devcamper/internal/pkg/logger"
	"github.com/mattwebdev/devcamper/internal/server"
)

// @title DevCamper API
// @version 1.0
// @description Bootcamp directory API with nested courses and publisher accounts

// @contact.name API Support
// @contact.email support@devcamper.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Environment variables from .env override config.yaml values
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment and config.yaml")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
