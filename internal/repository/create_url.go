package repository

import (
	"fmt"

	"github.com/avc-dev/linkcounter/internal/model"
)

// CreateURL сохраняет пару код-URL, если код ещё не занят
func (r Repository) CreateURL(code model.Code, url model.URL) error {
	if err := r.underlying.SaveIfAbsent(code, url); err != nil {
		return fmt.Errorf("failed to create URL: %w", err)
	}

	return nil
}
