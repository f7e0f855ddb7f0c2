package usecase

import (
	"fmt"
	"net/url"
)

// validateURL проверяет, что строка является корректным абсолютным URL со схемой и хостом
func (u *URLUsecase) validateURL(urlString string) error {
	if err := u.validate.Var(urlString, "required,url"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if parsedURL.Scheme == "" || parsedURL.Hostname() == "" {
		return fmt.Errorf("%w: scheme and host are required", ErrInvalidURL)
	}

	return nil
}
