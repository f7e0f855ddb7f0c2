package repository

import "github.com/avc-dev/linkcounter/internal/model"

// IsCodeUnique проверяет, свободен ли код.
// Результат верен только на момент проверки: занять код атомарно можно лишь через CreateURL
func (r Repository) IsCodeUnique(code model.Code) bool {
	return !r.underlying.Exists(code)
}
