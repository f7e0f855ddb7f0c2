package usecase

import (
	"fmt"

	"github.com/avc-dev/linkcounter/internal/model"
	"go.uber.org/zap"
)

// GetStats возвращает снимок записи для короткого кода без учета перехода
func (u *URLUsecase) GetStats(code string) (model.Record, error) {
	record, ok := u.repo.GetURLByCode(model.Code(code))
	if !ok {
		u.logger.Debug("stats requested for unknown code", zap.String("code", code))
		return model.Record{}, fmt.Errorf("code %s: %w", code, ErrURLNotFound)
	}

	return record, nil
}
