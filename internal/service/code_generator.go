package service

import (
	"fmt"

	"github.com/avc-dev/linkcounter/internal/model"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	CodeLength   = 6
	AllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// RetryPolicy ограничивает число попыток генерации уникального кода
type RetryPolicy struct {
	// MaxAttempts число попыток на каждую длину кода
	MaxAttempts int
	// MaxExtraLength на сколько символов можно удлинить код, если попытки исчерпаны
	MaxExtraLength int
}

// CodeGenerator генерирует случайные коды фиксированной длины из алфавита AllowedChars.
// Безопасен для конкурентного использования
type CodeGenerator struct {
	length int
	policy RetryPolicy
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator(length int, policy RetryPolicy) *CodeGenerator {
	if length <= 0 {
		length = CodeLength
	}

	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}

	if policy.MaxExtraLength < 0 {
		policy.MaxExtraLength = 0
	}

	return &CodeGenerator{
		length: length,
		policy: policy,
	}
}

// GenerateCode генерирует случайный код базовой длины
func (g *CodeGenerator) GenerateCode() (model.Code, error) {
	return g.generate(g.length)
}

// generate генерирует случайный код заданной длины, символы выбираются равновероятно
func (g *CodeGenerator) generate(length int) (model.Code, error) {
	code, err := gonanoid.Generate(AllowedChars, length)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return model.Code(code), nil
}
