package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCodeLength     = 6
	DefaultMaxAttempts    = 100
	DefaultMaxExtraLength = 2
)

var ErrInvalidConfig = errors.New("invalid config")

// RetryConfig параметры повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts    int `env:"MAX_ATTEMPTS" yaml:"max_attempts"`
	MaxExtraLength int `env:"MAX_EXTRA_LENGTH" yaml:"max_extra_length"`
}

// HTTPConfig таймауты HTTP сервера
type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" yaml:"read_timeout"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" yaml:"write_timeout"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
}

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddress      NetworkAddress `env:"SERVER_ADDRESS" yaml:"server_address"`
	BaseURL            URLPrefix      `env:"BASE_URL" yaml:"base_url"`
	LogLevel           string         `env:"LOG_LEVEL" yaml:"log_level"`
	CodeLength         int            `env:"CODE_LENGTH" yaml:"code_length"`
	CORSAllowedOrigins []string       `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," yaml:"cors_allowed_origins"`
	Retry              RetryConfig    `envPrefix:"RETRY_" yaml:"retry"`
	HTTP               HTTPConfig     `envPrefix:"HTTP_" yaml:"http"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:      NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:            "",
		LogLevel:           "info",
		CodeLength:         DefaultCodeLength,
		CORSAllowedOrigins: []string{"*"},
		Retry: RetryConfig{
			MaxAttempts:    DefaultMaxAttempts,
			MaxExtraLength: DefaultMaxExtraLength,
		},
		HTTP: HTTPConfig{
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load загружает конфигурацию из аргументов командной строки и окружения
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs загружает конфигурацию в порядке приоритета:
// значения по умолчанию, YAML файл, флаги, переменные окружения
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	var (
		address  NetworkAddress
		baseURL  URLPrefix
		logLevel string
		path     string
	)

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&address, "a", "address to run HTTP server")
	fs.Var(&baseURL, "b", "base URL for shortened URL")
	fs.StringVar(&logLevel, "l", "", "log level")
	fs.StringVar(&path, "c", "", "path to YAML config file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	// Флаги применяются поверх файла, но только явно заданные
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.ServerAddress = address
		case "b":
			cfg.BaseURL = baseURL
		case "l":
			cfg.LogLevel = logLevel
		}
	})

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	// Пустой файл не считается ошибкой
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	return nil
}

// Validate проверяет корректность значений конфигурации
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch {
	case c.CodeLength <= 0:
		return fmt.Errorf("%w: code length must be positive, got %d", ErrInvalidConfig, c.CodeLength)
	case c.Retry.MaxAttempts <= 0:
		return fmt.Errorf("%w: retry max attempts must be positive, got %d", ErrInvalidConfig, c.Retry.MaxAttempts)
	case c.Retry.MaxExtraLength < 0:
		return fmt.Errorf("%w: retry max extra length must not be negative, got %d", ErrInvalidConfig, c.Retry.MaxExtraLength)
	case c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.IdleTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: HTTP timeouts must be positive", ErrInvalidConfig)
	}

	return nil
}
