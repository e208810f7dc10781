// Command recommend prints the top restaurants for one city and category
// using the configured dataset source.
//
//	go run ./cmd/recommend <city> <category> [max_distance_meters] [k]
//
// For example:
//
//	go run ./cmd/recommend Pune Cafe 1500 3
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"restaurant_analytics/internal/application"
	"restaurant_analytics/internal/config"
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/service/recommend"
	"restaurant_analytics/internal/domain/value"
	"restaurant_analytics/internal/infrastructure/source"
	"restaurant_analytics/internal/server"
	"restaurant_analytics/pkg/contextx"
	"restaurant_analytics/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(logx.NewHandler(os.Stderr, logx.FormatText, slog.LevelInfo))
	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Error("recommend failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	query, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	src, closeSource, err := application.NewSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("application.NewSource: %w", err)
	}
	defer closeSource()

	dataset, err := source.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("source.Load: %w", err)
	}

	return printRecommendation(out, recommend.Recommend(dataset, query))
}

func parseArgs(args []string) (value.RecommendationQuery, error) {
	if len(args) < 2 || len(args) > 4 {
		return value.RecommendationQuery{}, fmt.Errorf("usage: recommend <city> <category> [max_distance_meters] [k]")
	}

	query := value.RecommendationQuery{
		City:        args[0],
		Category:    args[1],
		MaxDistance: value.DefaultMaxDistance,
		K:           value.DefaultK,
	}

	if len(args) > 2 {
		d, err := strconv.ParseFloat(args[2], 64)
		if err != nil || d < 0 {
			return value.RecommendationQuery{}, fmt.Errorf("invalid max distance %q", args[2])
		}

		query.MaxDistance = d
	}

	if len(args) > 3 {
		k, err := strconv.Atoi(args[3])
		if err != nil || k < 1 || k > value.MaxRecommendations {
			return value.RecommendationQuery{}, fmt.Errorf("k must be between 1 and %d, got %q", value.MaxRecommendations, args[3])
		}

		query.K = k
	}

	return query, nil
}

func printRecommendation(out io.Writer, rec entity.Recommendation) error {
	if rec.NoMatches {
		_, err := fmt.Fprintln(out, server.NoMatchesMessage)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "#\tName\tRating\tReviews\tDistance (m)\tScore")

	for i, item := range rec.Items {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%d\t%.0f\t%.3f\n",
			i+1, item.Name, item.Rating, item.ReviewCount, item.DistanceMeters, item.Score)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush: %w", err)
	}

	return nil
}
