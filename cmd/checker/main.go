package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"ticketwatch/internal/checker"
	"ticketwatch/internal/config"
	"ticketwatch/internal/lib/setup"
)

func main() {
	// .env must be loaded first so LOG_LEVEL can come from it
	setup.LoadEnv()
	setup.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewCheckerConfig()
	notifiers := setup.Notifiers(nil)

	slog.Info(
		"starting seat check",
		slog.String("prod_id", cfg.ProdID),
		slog.Int("notifiers", len(notifiers)),
	)
	checker.New(nil, notifiers, cfg).Check(ctx)
}
