package usecase

import (
	"fmt"

	"github.com/avc-dev/linkcounter/internal/model"
	"go.uber.org/zap"
)

// ResolveURL возвращает оригинальный URL по короткому коду и учитывает переход
func (u *URLUsecase) ResolveURL(code string) (string, error) {
	record, ok := u.repo.GetURLByCode(model.Code(code))
	if !ok {
		u.logger.Debug("short code not found", zap.String("code", code))
		return "", fmt.Errorf("code %s: %w", code, ErrURLNotFound)
	}

	u.repo.IncrementClicks(model.Code(code))

	return record.URL.String(), nil
}
