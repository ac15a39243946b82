package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ritvik-Gupta/scraprs/internal/config"
	"github.com/Ritvik-Gupta/scraprs/pkg/logger"
)

func main() {
	logger.Init(logger.IsDev())
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Log.Error().Err(err).Msg("wikilinks failed")
		os.Exit(1)
	}
}
