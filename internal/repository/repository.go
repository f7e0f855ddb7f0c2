package repository

import (
	"github.com/avc-dev/linkcounter/internal/model"
)

// Store описывает хранилище записей, с которым работает репозиторий
type Store interface {
	SaveIfAbsent(key model.Code, url model.URL) error
	Get(key model.Code) (model.Record, bool)
	Exists(key model.Code) bool
	IncrementClicks(key model.Code)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}
