// internal/storage/memory.go
package storage

import "sync"

// MemoryStore — хранилище без диска (тесты, запуск без каталога сохранений)
type MemoryStore struct {
	mu        sync.Mutex
	highScore int
	prefs     map[string]string
	plays     []Play
	closed    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]string)}
}

func (s *MemoryStore) HighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.highScore, nil
}

func (s *MemoryStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if score > s.highScore {
		s.highScore = score
	}
	return nil
}

func (s *MemoryStore) Preference(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.prefs[key]
	return v, ok, nil
}

func (s *MemoryStore) SetPreference(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.prefs[key] = value
	return nil
}

func (s *MemoryStore) RecordPlay(p Play) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.plays = append(s.plays, p)
	return nil
}

// Plays — копия записанных партий в порядке записи
func (s *MemoryStore) Plays() []Play {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Play(nil), s.plays...)
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
