package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultConfigDir     = ".notekeeper"
	defaultOutput        = "text"
	defaultTimeout       = 30 * time.Second
)

var (
	ErrNoServerAddress = errors.New("server_address не может быть пустым")
	ErrBadOutput       = errors.New("output должен быть text, json или yaml")
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	ServerAddress string        `mapstructure:"server_address"`
	LogLevel      string        `mapstructure:"log_level"`
	ConfigDir     string        `mapstructure:"config_dir"`
	TokenPath     string        `mapstructure:"token_path"`
	StatePath     string        `mapstructure:"state_path"`
	Output        string        `mapstructure:"output"`
	Timeout       time.Duration `mapstructure:"timeout"`
	EnableTLS     bool          `mapstructure:"enable_tls"`
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке.
func MustLoad() *Config {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, переменные окружения и уже прочитанный viper конфиг (config.yaml).
func Load(v *viper.Viper) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", "")
	v.SetDefault("OUTPUT", defaultOutput)
	v.SetDefault("TIMEOUT", defaultTimeout)
	v.SetDefault("ENABLE_TLS", false)

	configDir := v.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, defaultConfigDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("создание директории конфигурации: %w", err)
	}

	config := &Config{
		Env:           v.GetString("APP_ENV"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		ConfigDir:     configDir,
		TokenPath:     filepath.Join(configDir, "token"),
		StatePath:     filepath.Join(configDir, "state.json"),
		Output:        v.GetString("OUTPUT"),
		Timeout:       v.GetDuration("TIMEOUT"),
		EnableTLS:     v.GetBool("ENABLE_TLS"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return ErrNoServerAddress
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", ErrBadOutput, c.Output)
	}
	return nil
}

// BaseURL - адрес сервера со схемой. Адрес, уже содержащий схему, не меняется.
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return c.ServerAddress
	}
	if c.EnableTLS {
		return "https://" + c.ServerAddress
	}
	return "http://" + c.ServerAddress
}
