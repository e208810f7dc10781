package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"restaurant_analytics/internal/application"
	"restaurant_analytics/internal/config"
	"restaurant_analytics/pkg/contextx"
	"restaurant_analytics/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	level, err := logx.ParseLevel(cfg.Log.Level)
	if err != nil {
		slog.Error("logx.ParseLevel", logx.Error(err))
		os.Exit(1)
	}

	log := slog.New(logx.NewHandler(os.Stdout, cfg.Log.Format, level)).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
