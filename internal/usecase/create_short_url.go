package usecase

import (
	"fmt"
	"net/url"

	"github.com/avc-dev/linkcounter/internal/model"
	"go.uber.org/zap"
)

// CreateShortURLFromString создает короткий URL из строки оригинального URL.
// URL сохраняется без изменений. hostURL используется как база для короткой ссылки,
// если BaseURL не задан в конфигурации
func (u *URLUsecase) CreateShortURLFromString(urlString string, hostURL string) (model.ShortenResult, error) {
	if urlString == "" {
		return model.ShortenResult{}, ErrEmptyURL
	}

	if err := u.validateURL(urlString); err != nil {
		u.logger.Debug("rejected invalid URL",
			zap.String("original_url", urlString),
			zap.Error(err),
		)
		return model.ShortenResult{}, err
	}

	originalURL := model.URL(urlString)
	code, err := u.service.CreateShortURL(originalURL)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", string(originalURL)),
			zap.Error(err),
		)
		return model.ShortenResult{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	shortURL, err := u.buildShortURL(hostURL, code)
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("host_url", hostURL),
			zap.String("code", string(code)),
			zap.Error(err),
		)
		return model.ShortenResult{}, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("short URL created",
		zap.String("code", string(code)),
		zap.String("original_url", string(originalURL)),
	)

	return model.ShortenResult{
		Code:     code,
		ShortURL: shortURL,
	}, nil
}

func (u *URLUsecase) buildShortURL(hostURL string, code model.Code) (string, error) {
	base := u.cfg.BaseURL.String()
	if base == "" {
		base = hostURL
	}

	return url.JoinPath(base, string(code))
}
