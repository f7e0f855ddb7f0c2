package app

import (
	"github.com/avc-dev/linkcounter/internal/config"
	"github.com/avc-dev/linkcounter/internal/handler"
	"github.com/avc-dev/linkcounter/internal/repository"
	"github.com/avc-dev/linkcounter/internal/service"
	"github.com/avc-dev/linkcounter/internal/store"
	"github.com/avc-dev/linkcounter/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*handler.Handler, *store.Store) {
	logger.Info("Using in-memory storage")

	storage := store.NewStore()
	repo := repository.New(storage)
	urlService := service.NewURLService(repo, cfg)
	urlUsecase := usecase.NewURLUsecase(repo, urlService, cfg, logger)

	return handler.New(urlUsecase, logger), storage
}
