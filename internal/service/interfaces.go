package service

import "github.com/avc-dev/linkcounter/internal/model"

//go:generate mockery --name URLRepository --name Generator

// URLRepository определяет методы для работы с хранилищем URL
type URLRepository interface {
	// CreateURL сохраняет пару код-URL в хранилище
	// Возвращает ошибку если код уже существует
	CreateURL(code model.Code, url model.URL) error
	// IsCodeUnique проверяет, свободен ли код
	IsCodeUnique(code model.Code) bool
}

// Generator определяет генератор уникальных кодов
type Generator interface {
	GenerateUniqueCode(isUnique func(code model.Code) bool) (model.Code, error)
}
