package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// AuthStoreMemory keeps provisioned accounts in process memory
	AuthStoreMemory = "memory"
	// AuthStorePostgres keeps provisioned accounts in postgres
	AuthStorePostgres = "postgres"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"8080" validate:"min=1,max=65535"`
	AllowedOrigin   string        `env:"HTTP_CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:3000" validate:"required"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type GrpcCfg struct {
	HealthPort     int           `env:"GRPC_HEALTH_PORT" envDefault:"3010" validate:"min=1,max=65535"`
	HealthInterval time.Duration `env:"GRPC_HEALTH_INTERVAL" envDefault:"15s"`
}

type MongoCfg struct {
	URI            string        `env:"MONGO_URI"`
	Database       string        `env:"MONGO_DATABASE" envDefault:"webservice" validate:"required"`
	MaxPoolSize    uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"5s"`
}

type PostgresCfg struct {
	URL            string        `env:"POSTGRES_URL" envDefault:""`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`
}

type AuthCfg struct {
	Store         string `env:"AUTH_STORE" envDefault:"memory" validate:"oneof=memory postgres"`
	Realm         string `env:"AUTH_REALM" envDefault:"webservice"`
	BcryptCost    int    `env:"AUTH_BCRYPT_COST" envDefault:"10" validate:"min=4,max=31"`
	UserPassword  string `env:"AUTH_USER_PASSWORD" envDefault:"user" validate:"required"`
	AdminPassword string `env:"AUTH_ADMIN_PASSWORD" envDefault:"admin" validate:"required"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

type Config struct {
	HTTPCfg     HTTPCfg
	GrpcCfg     GrpcCfg
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	AuthCfg     AuthCfg
	LogCfg      LogCfg
}

// Build loads optional .env files and parses config from environment
func Build(envFiles ...string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load env file - %w", err)
	}

	opts := env.Options{RequiredIfNoDef: true}
	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration - %w", err)
	}

	if cfg.AuthCfg.Store == AuthStorePostgres && cfg.PostgresCfg.URL == "" {
		return cfg, errors.New("invalid configuration - POSTGRES_URL is required for postgres auth store")
	}
	return cfg, nil
}
