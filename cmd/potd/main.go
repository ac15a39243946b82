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

	// Interrupts cancel the context so the browser session is still released.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Log.Error().Err(err).Msg("potd failed")
		os.Exit(1)
	}
}
