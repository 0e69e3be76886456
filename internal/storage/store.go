// internal/storage/store.go
package storage

import (
	"errors"
	"time"
)

var ErrClosed = errors.New("storage: store is closed")

// Ключи настроек игрока
const (
	PrefKnifeSkin = "knife_skin"
	PrefSound     = "sound"
)

// Play — итог одной партии
type Play struct {
	SessionID string
	Score     int
	Stage     int
	Apples    int
	UsedAd    bool
	At        time.Time
}

// Store хранит рекорд и выбор игрока между запусками
type Store interface {
	HighScore() (int, error)
	// SaveHighScore записывает рекорд; меньшее значение не затирает большее
	SaveHighScore(score int) error
	Preference(key string) (string, bool, error)
	SetPreference(key, value string) error
	RecordPlay(p Play) error
	Close() error
}
