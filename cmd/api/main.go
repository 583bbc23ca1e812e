package main

import (
	"flag"

	"github.com/yigit/unitutor/internal/pkg/logger"
	"github.com/yigit/unitutor/internal/server"
)

// @title UniTutor API
// @version 1.0
// @description API for browsing subjects, their professors and requesting instruction sessions
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@unitutor.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
