package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/di"
	"github.com/NikQuila/website-gocar-sub000/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Setup(cfg, "notifier")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeNotifier()
	consumer.Run(ctx)

	log.Info().Msg("notification consumer stopped")
}
