package model

import "time"

// Code короткий код, под которым хранится URL
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный (длинный) URL
type URL string

func (U URL) String() string {
	return string(U)
}

// Record представляет запись хранилища для одного короткого кода
type Record struct {
	URL       URL
	Clicks    uint64
	CreatedAt time.Time
}

// ShortenResult результат сокращения URL
type ShortenResult struct {
	Code     Code
	ShortURL string
}
