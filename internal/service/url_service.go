package service

import (
	"errors"
	"fmt"

	"github.com/avc-dev/linkcounter/internal/config"
	"github.com/avc-dev/linkcounter/internal/model"
	"github.com/avc-dev/linkcounter/internal/store"
)

// URLService содержит бизнес-логику для создания коротких URL
type URLService struct {
	repo          URLRepository
	codeGenerator Generator
	cfg           *config.Config
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo URLRepository, cfg *config.Config) *URLService {
	codeGenerator := NewCodeGenerator(cfg.CodeLength, RetryPolicy{
		MaxAttempts:    cfg.Retry.MaxAttempts,
		MaxExtraLength: cfg.Retry.MaxExtraLength,
	})

	return &URLService{
		repo:          repo,
		codeGenerator: codeGenerator,
		cfg:           cfg,
	}
}

// CreateShortURL генерирует свободный код и атомарно сохраняет его вместе с оригинальным URL.
// Между проверкой кода и сохранением код может занять конкурентный запрос,
// в этом случае генерация повторяется
func (s *URLService) CreateShortURL(originalURL model.URL) (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code, err := s.codeGenerator.GenerateUniqueCode(s.repo.IsCodeUnique)
		if err != nil {
			return "", fmt.Errorf("failed to generate unique code: %w", err)
		}

		err = s.repo.CreateURL(code, originalURL)
		if err == nil {
			return code, nil
		}

		if !errors.Is(err, store.ErrAlreadyExists) {
			return "", fmt.Errorf("failed to create URL: %w", err)
		}
	}

	return "", fmt.Errorf("failed to save unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}
