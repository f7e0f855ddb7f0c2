package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc-dev/linkcounter/internal/config"
	"github.com/avc-dev/linkcounter/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App представляет приложение сервиса коротких ссылок
type App struct {
	config *config.Config
	logger *zap.Logger
	router http.Handler
	store  *store.Store
}

// New собирает приложение из готовой конфигурации
func New(cfg *config.Config, logger *zap.Logger) *App {
	h, storage := initDependencies(cfg, logger)

	return &App{
		config: cfg,
		logger: logger,
		router: newRouter(h, logger, cfg),
		store:  storage,
	}
}

// Handler возвращает корневой HTTP обработчик приложения
func (a *App) Handler() http.Handler {
	return a.router
}

// NewLogger создает production логгер с заданным уровнем
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}

// Run загружает конфигурацию и обслуживает запросы до отмены контекста
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return New(cfg, logger).Start(ctx)
}
