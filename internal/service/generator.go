package service

import (
	"fmt"

	"github.com/avc-dev/linkcounter/internal/model"
)

// GenerateUniqueCode генерирует коды до тех пор, пока isUnique не подтвердит, что код свободен.
// После MaxAttempts неудач длина кода увеличивается на один символ, но не более чем на MaxExtraLength
func (g *CodeGenerator) GenerateUniqueCode(isUnique func(code model.Code) bool) (model.Code, error) {
	total := 0

	for extra := 0; extra <= g.policy.MaxExtraLength; extra++ {
		length := g.length + extra

		for attempt := 0; attempt < g.policy.MaxAttempts; attempt++ {
			total++

			code, err := g.generate(length)
			if err != nil {
				return "", err
			}

			if isUnique(code) {
				return code, nil
			}
		}
	}

	return "", fmt.Errorf("could not generate unique code after %d attempts: %w", total, ErrMaxRetriesExceeded)
}
