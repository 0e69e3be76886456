// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_score (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	score INTEGER NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS plays (
	session_id TEXT PRIMARY KEY,
	score INTEGER NOT NULL,
	stage INTEGER NOT NULL,
	apples INTEGER NOT NULL,
	used_ad INTEGER NOT NULL,
	played_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plays_score ON plays(score);
`

// SQLiteStore — хранилище в файле SQLite (чистый Go драйвер, без cgo)
type SQLiteStore struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) HighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}

	var score int
	err := s.db.QueryRow(`SELECT score FROM high_score WHERE id = 1`).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read high score: %w", err)
	}
	return score, nil
}

func (s *SQLiteStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			score = MAX(score, excluded.score),
			updated_at = excluded.updated_at`,
		score, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Preference(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, ErrClosed
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) SetPreference(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) RecordPlay(p Play) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if p.At.IsZero() {
		p.At = time.Now()
	}

	usedAd := 0
	if p.UsedAd {
		usedAd = 1
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO plays (session_id, score, stage, apples, used_ad, played_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.SessionID, p.Score, p.Stage, p.Apples, usedAd, p.At.UTC())
	if err != nil {
		return fmt.Errorf("failed to record play: %w", err)
	}
	return nil
}

// Plays возвращает последние партии, новые первыми
func (s *SQLiteStore) Plays(limit int) ([]Play, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(`
		SELECT session_id, score, stage, apples, used_ad, played_at
		FROM plays ORDER BY played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var usedAd int
		if err := rows.Scan(&p.SessionID, &p.Score, &p.Stage, &p.Apples, &usedAd, &p.At); err != nil {
			return nil, fmt.Errorf("failed to scan play: %w", err)
		}
		p.UsedAd = usedAd != 0
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
