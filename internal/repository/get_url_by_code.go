package repository

import "github.com/avc-dev/linkcounter/internal/model"

func (r Repository) GetURLByCode(code model.Code) (model.Record, bool) {
	return r.underlying.Get(code)
}

// IncrementClicks учитывает один переход по коду
func (r Repository) IncrementClicks(code model.Code) {
	r.underlying.IncrementClicks(code)
}
