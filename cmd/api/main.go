package main

import (
	"os"

	"github.com/yigit/placementportal/internal/pkg/logger"
	"github.com/yigit/placementportal/internal/server"
)

// @title Placement Portal API
// @version 1.0
// @description College placement portal: placement records, company visits and account administration.

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Details are logged inside the bootstrap steps
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM or a listener failure
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
