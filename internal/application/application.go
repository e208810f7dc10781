// Package application wires the dataset, the analytics service and the HTTP
// servers together.
package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"restaurant_analytics/internal/config"
	service "restaurant_analytics/internal/domain/service/analytics"
	"restaurant_analytics/internal/infrastructure/persistence"
	"restaurant_analytics/internal/infrastructure/rediscache"
	"restaurant_analytics/internal/infrastructure/source"
	"restaurant_analytics/internal/infrastructure/telemetry"
	"restaurant_analytics/internal/server"
	"restaurant_analytics/pkg/application/connectors"
	"restaurant_analytics/pkg/application/modules"
	"restaurant_analytics/pkg/contextx"
	"restaurant_analytics/pkg/logx"
	"restaurant_analytics/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var (
	logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

	errDatasetLoading = errors.New("dataset is loading")
)

// Run blocks until ctx is done or a module fails. Probe and metrics servers
// start first; /ready reports success once the dataset is loaded and the API
// server is up.
func Run(ctx context.Context, cfg config.Config) error {
	src, closeSource, err := NewSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("NewSource: %w", err)
	}
	defer closeSource()

	var ready atomic.Bool

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		Dataset:       src.String(),
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g, func(context.Context) error {
		if !ready.Load() {
			return errDatasetLoading
		}

		return nil
	})

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	g.Go(func() error {
		dataset, err := source.Load(ctx, src)
		if err != nil {
			return fmt.Errorf("source.Load: %w", err)
		}

		closeSource()

		recorder := telemetry.NewRecorder()
		recorder.DatasetLoaded(dataset.Len())

		analytics := service.NewAnalyticsService(dataset).
			WithViewTTL(cfg.Cache.ViewTTL).
			WithRecorder(recorder)

		if cfg.Redis.Enabled() {
			rd := &connectors.Redis{
				Username:           cfg.Redis.Username,
				Password:           cfg.Redis.Password,
				Address:            cfg.Redis.Address,
				DatabaseNumber:     cfg.Redis.DatabaseNumber,
				PoolSize:           cfg.Redis.PoolSize,
				MinIdleConnections: cfg.Redis.MinIdleConnections,
				MaxIdleConnections: cfg.Redis.MaxIdleConnections,
			}
			client := rd.Client(ctx)

			go func() {
				<-ctx.Done()
				rd.Close(context.WithoutCancel(ctx))
			}()

			if err := rd.Ping(ctx); err != nil {
				logger(ctx).Warn("recommendation cache unavailable", logx.Error(err))
			}

			analytics.WithRecommendationCache(rediscache.NewRecommendationCache(client, cfg.Redis.RecommendationTTL))
		}

		modules.HTTPServer{
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		}.Run(ctx, g, newHTTPServer(ctx, cfg.HTTP, analytics))

		ready.Store(true)

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// NewSource picks the dataset source. The returned close func releases any
// connection the source holds and may be called more than once.
func NewSource(ctx context.Context, cfg config.Config) (source.Source, func(), error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourceFile:
		return source.NewFile(cfg.Dataset.Path), func() {}, nil
	case config.DatasetSourceHTTP:
		return source.NewHTTP(
			cfg.Dataset.URL,
			cfg.Dataset.Token,
			cfg.Dataset.HTTPTimeout,
			cfg.HTTP.LogFieldMaxLen,
		), func() {}, nil
	case config.DatasetSourcePostgres:
		pg := NewPostgres(cfg.Postgres)

		db := pg.Client(ctx)
		if err := pg.Ping(ctx); err != nil {
			pg.Close(ctx)
			return nil, nil, fmt.Errorf("pg.Ping: %w", err)
		}

		var closed atomic.Bool

		return source.NewPostgres(persistence.NewRestaurantRepository(db)), func() {
			if closed.CompareAndSwap(false, true) {
				pg.Close(ctx)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}

// NewPostgres builds the Postgres connector from config.
func NewPostgres(cfg config.Postgres) *connectors.Postgres {
	return &connectors.Postgres{
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
}

// NewRouter mounts the API behind the middleware chain.
func NewRouter(cfg config.HTTP, analytics *service.AnalyticsService) chi.Router {
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.Metrics,
		middlewarex.RequestLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewDashboardServer(analytics),
		server.NewRecommendServer(analytics),
	).RegisterRoutes(router)

	return router
}

func newHTTPServer(ctx context.Context, cfg config.HTTP, analytics *service.AnalyticsService) *http.Server {
	return &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.ListenAddress,
		Handler:           NewRouter(cfg, analytics),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
