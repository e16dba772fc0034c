package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/apaar/credhub/internal/pkg/logger"
	"github.com/apaar/credhub/internal/server"
)

// @title credhub API
// @version 1.0
// @description Credential issuance and verification API for students, institutes, and companies

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
