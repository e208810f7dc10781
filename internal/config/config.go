package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DatasetSourceFile     = "file"
	DatasetSourceHTTP     = "http"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App      App
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Log      Log
	Dataset  Dataset
	Postgres Postgres
	Redis    Redis
	Cache    Cache
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"restaurant-analytics" validate:"required"`
	Version string `env:"APP_VERSION" envDefault:"dev" validate:"required"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080" validate:"required"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	LogFieldMaxLen  int           `env:"LOG_FIELD_MAX_LEN" envDefault:"4096" validate:"gte=0"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081" validate:"required"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090" validate:"required"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

type Dataset struct {
	Source      string        `env:"DATASET_SOURCE" envDefault:"file" validate:"oneof=file http postgres"`
	Path        string        `env:"DATASET_PATH" envDefault:"fully_geocoded_restaurants.csv" validate:"required_if=Source file"`
	URL         string        `env:"DATASET_URL" validate:"required_if=Source http,omitempty,url"`
	Token       string        `env:"DATASET_HTTP_TOKEN" json:"-"`
	HTTPTimeout time.Duration `env:"DATASET_HTTP_TIMEOUT" envDefault:"30s" validate:"gt=0"`
}

type Redis struct {
	Address            string        `env:"REDIS_ADDRESS"`
	Username           string        `env:"REDIS_USERNAME"`
	Password           string        `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int           `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	PoolSize           int           `env:"REDIS_POOL_SIZE" envDefault:"10" validate:"gt=0"`
	MinIdleConnections int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1" validate:"gte=0"`
	MaxIdleConnections int           `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5" validate:"gte=0"`
	RecommendationTTL  time.Duration `env:"REDIS_RECOMMENDATION_TTL" envDefault:"15m" validate:"gt=0"`
}

// Enabled reports whether recommendation results are cached in Redis.
func (r Redis) Enabled() bool {
	return r.Address != ""
}

type Cache struct {
	ViewTTL time.Duration `env:"CACHE_VIEW_TTL" envDefault:"10m" validate:"gt=0"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate.Struct: %w", err)
	}

	if c.Dataset.Source == DatasetSourcePostgres && c.Postgres.DSN == "" {
		return fmt.Errorf("config.Validate: PG_DSN is required for dataset source %q", DatasetSourcePostgres)
	}

	return nil
}
