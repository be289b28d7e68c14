package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envPath   = ".env"
	SecretKey = "SecRetKey"
	EnvLocal  = "local"
	EnvDev    = "dev"
	EnvProd   = "prod"

	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

var (
	ErrNoSecret      = errors.New("SECRET_KEY must be set outside of local environment")
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrNoDatabaseURI = errors.New("DATABASE_URI must be set for postgres storage")
	ErrBadTokenTTL   = errors.New("AUTH_TOKEN_TTL must be positive")
)

// Config собирается один раз при старте и дальше только читается.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"local"`
	DB      DB
	Server  Server
	Logger  Logger
	Auth    Auth
	Storage Storage
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

type Storage struct {
	Driver     string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	BadgerPath string `env:"BADGER_PATH" envDefault:"data/notekeeper"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

type Auth struct {
	Secret     string        `env:"SECRET_KEY"`
	TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}

// MustLoad читает .env (если есть) и переменные окружения, падает на невалидной конфигурации.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func Load() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет согласованность настроек; в local подставляет секрет по умолчанию.
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		if c.Env != EnvLocal {
			return ErrNoSecret
		}
		c.Auth.Secret = SecretKey
	}

	if c.Auth.TokenTTL <= 0 {
		return ErrBadTokenTTL
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return ErrNoDatabaseURI
		}
	case DriverBadger:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}

	return nil
}
