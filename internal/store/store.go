package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/linkcounter/internal/model"
)

var ErrAlreadyExists = errors.New("key already exists")

// RecordMap представляет маппинг коротких кодов на записи URL
type RecordMap = map[model.Code]model.Record

// Store потокобезопасное in-memory хранилище записей.
// Все операции выполняются под одним мьютексом и линеаризуемы относительно друг друга.
type Store struct {
	store RecordMap
	mutex sync.Mutex
	now   func() time.Time
}

// Option настраивает Store
type Option func(*Store)

// WithClock задаёт источник времени для created_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		store: make(RecordMap),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) newRecord(url model.URL) model.Record {
	return model.Record{
		URL:       url,
		Clicks:    0,
		CreatedAt: s.now().UTC(),
	}
}

// Save создаёт или перезаписывает запись для кода
func (s *Store) Save(key model.Code, url model.URL) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.store[key] = s.newRecord(url)
}

// SaveIfAbsent атомарно создаёт запись, только если код ещё не занят
func (s *Store) SaveIfAbsent(key model.Code, url model.URL) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Проверяем существование ключа напрямую, без вызова Exists (чтобы избежать deadlock)
	if _, exists := s.store[key]; exists {
		return fmt.Errorf("key %s: %w", key, ErrAlreadyExists)
	}

	s.store[key] = s.newRecord(url)

	return nil
}

// Get возвращает копию записи. false означает, что кода нет
func (s *Store) Get(key model.Code) (model.Record, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.store[key]

	return record, ok
}

func (s *Store) Exists(key model.Code) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.store[key]

	return ok
}

// IncrementClicks увеличивает счётчик переходов на 1. Для отсутствующего кода ничего не делает
func (s *Store) IncrementClicks(key model.Code) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.store[key]
	if !ok {
		return
	}

	record.Clicks++
	s.store[key] = record
}

// Len возвращает количество записей
func (s *Store) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.store)
}
