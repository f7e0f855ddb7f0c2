package usecase

import (
	"github.com/avc-dev/linkcounter/internal/config"
	"github.com/avc-dev/linkcounter/internal/model"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockery --name RecordRepository --name URLService

// RecordRepository определяет интерфейс для чтения записей и учета переходов
type RecordRepository interface {
	GetURLByCode(code model.Code) (model.Record, bool)
	IncrementClicks(code model.Code)
}

// URLService определяет интерфейс для работы с сервисом генерации коротких URL
type URLService interface {
	CreateShortURL(originalURL model.URL) (model.Code, error)
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	repo     RecordRepository
	service  URLService
	cfg      *config.Config
	logger   *zap.Logger
	validate *validator.Validate
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo RecordRepository, service URLService, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:     repo,
		service:  service,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
	}
}
