package main

import (
	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/di"
	"github.com/NikQuila/website-gocar-sub000/helper"
	"github.com/NikQuila/website-gocar-sub000/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title GoCar Appointments API
// @version 1.0
// @description Dealership appointment booking: availability, booking sessions, customers and appointments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Setup(cfg, "api")

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Migrate(cfg, helper.DirectionUp); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
