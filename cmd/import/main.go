// Command import replaces the restaurants table with the rows of a CSV file
// in the dataset format. The table must already exist (see migrations/).
//
//	PG_DSN=postgres://... go run ./cmd/import fully_geocoded_restaurants.csv
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"restaurant_analytics/internal/application"
	"restaurant_analytics/internal/config"
	"restaurant_analytics/internal/infrastructure/persistence"
	"restaurant_analytics/internal/infrastructure/source"
	"restaurant_analytics/pkg/contextx"
	"restaurant_analytics/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(logx.NewHandler(os.Stderr, logx.FormatText, slog.LevelInfo))
	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Error("import failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: import <csv-path>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("PG_DSN is required")
	}

	// Same decoding rules as the file dataset source.
	dataset, err := source.Load(ctx, source.NewFile(args[0]))
	if err != nil {
		return fmt.Errorf("source.Load: %w", err)
	}

	pg := application.NewPostgres(cfg.Postgres)

	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := pg.Ping(ctx); err != nil {
		return fmt.Errorf("pg.Ping: %w", err)
	}

	if err := persistence.NewRestaurantRepository(db).ReplaceAll(ctx, dataset.Rows()); err != nil {
		return fmt.Errorf("ReplaceAll: %w", err)
	}

	logger := contextx.LoggerFromContextOrDefault(ctx)
	logger.Info(
		"restaurants imported",
		slog.Int(logx.FieldDatasetRows, dataset.Len()),
		slog.String(logx.FieldDatasetVersion, dataset.Version()),
	)

	return nil
}
