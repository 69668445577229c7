package main

import (
	"hms/config"
	"hms/di"
	"hms/helper"
	"hms/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hospital Management API
// @version 1.0
// @description Hospitals, ICUs, visitor rooms, staff and realtime availability.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg.Server.LogLevel)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
