package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("restaurant-analytics", cfg.App.Name)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal(config.DatasetSourceFile, cfg.Dataset.Source)
	rq.Equal("fully_geocoded_restaurants.csv", cfg.Dataset.Path)
	rq.Equal("text", cfg.Log.Format)
	rq.Equal(10*time.Minute, cfg.Cache.ViewTTL)
	rq.False(cfg.Redis.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("DATASET_SOURCE", "http")
	t.Setenv("DATASET_URL", "https://data.example.com/restaurants.csv")
	t.Setenv("DATASET_HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("CACHE_VIEW_TTL", "1m")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(config.DatasetSourceHTTP, cfg.Dataset.Source)
	rq.Equal("https://data.example.com/restaurants.csv", cfg.Dataset.URL)
	rq.Equal(5*time.Second, cfg.Dataset.HTTPTimeout)
	rq.Equal("json", cfg.Log.Format)
	rq.True(cfg.Redis.Enabled())
	rq.Equal(time.Minute, cfg.Cache.ViewTTL)
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Unknown dataset source",
			env:  map[string]string{"DATASET_SOURCE": "s3"},
		},
		{
			name: "HTTP source without URL",
			env:  map[string]string{"DATASET_SOURCE": "http"},
		},
		{
			name: "HTTP source with invalid URL",
			env:  map[string]string{"DATASET_SOURCE": "http", "DATASET_URL": "not a url"},
		},
		{
			name: "Postgres source without DSN",
			env:  map[string]string{"DATASET_SOURCE": "postgres"},
		},
		{
			name: "Unknown log level",
			env:  map[string]string{"LOG_LEVEL": "verbose"},
		},
		{
			name: "Zero view TTL",
			env:  map[string]string{"CACHE_VIEW_TTL": "0s"},
		},
		{
			name: "Malformed duration",
			env:  map[string]string{"HTTP_SHUTDOWN_TIMEOUT": "soon"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
