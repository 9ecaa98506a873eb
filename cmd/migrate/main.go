package main

import (
	"os"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/helper"
	"github.com/NikQuila/website-gocar-sub000/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Setup(cfg, "migrate")

	if len(os.Args) != 2 { //nolint:mnd
		log.Fatal().Msg("usage: migrate up|down|step-up|drop")
	}

	direction := helper.Direction(os.Args[1])

	if err := helper.Migrate(cfg, direction); err != nil {
		log.Fatal().Err(err).Str("direction", string(direction)).Msg("migration failed")
	}

	log.Info().Str("direction", string(direction)).Msg("migration applied")
}
