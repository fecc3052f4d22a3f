package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"wash-admin/internal/cli"
	"wash-admin/internal/logger"
)

func main() {
	slog.SetDefault(slog.New(logger.NewConsoleHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
