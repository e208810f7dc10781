// Package source loads the restaurant dataset from a file, an HTTP endpoint
// or Postgres.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/pkg/logx"
)

type Source interface {
	Load(ctx context.Context) ([]entity.Restaurant, error)
	String() string
}

// Load reads every row of src into an immutable dataset.
func Load(ctx context.Context, src Source) (entity.Dataset, error) {
	start := time.Now()

	rows, err := src.Load(ctx)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("source.Load %s: %w", src, err)
	}

	dataset := entity.NewDataset(rows)

	logger(ctx).Info(
		"dataset loaded",
		slog.String(logx.FieldDatasetSource, src.String()),
		slog.Int(logx.FieldDatasetRows, dataset.Len()),
		slog.String(logx.FieldDatasetVersion, dataset.Version()),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return dataset, nil
}
