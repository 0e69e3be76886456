// internal/session/session.go
package session

import (
	"go-knife-hit/internal/config"

	"github.com/google/uuid"
)

// Session — состояние одной партии. Создаётся при старте сцены и
// выбрасывается при её перезагрузке; переживает только рекорд.
type Session struct {
	ID        uuid.UUID
	Score     int
	Stage     int
	HighScore int
	Apples    int

	IsGameOver bool

	// Предложение досмотреть рекламу показывается один раз за партию
	UsedAdContinue  bool
	HasShownAdPopup bool
	IsAdShown       bool
}

// New начинает партию с первой стадии. debugStage > 0 позволяет
// начать с произвольной стадии.
func New(highScore, debugStage int) *Session {
	s := &Session{
		ID:        uuid.New(),
		Stage:     1,
		HighScore: highScore,
	}
	if debugStage > 0 {
		s.Stage = debugStage
	}
	return s
}

// IsBossStage — каждая пятая стадия отдана боссу
func IsBossStage(stage int) bool {
	return stage%config.BossEvery == 0
}

func (s *Session) IsBossStage() bool {
	return IsBossStage(s.Stage)
}

// AddScore увеличивает счёт; отрицательные значения игнорируются,
// счёт в пределах партии не убывает.
func (s *Session) AddScore(n int) {
	if n > 0 {
		s.Score += n
	}
}

// AdvanceStage переводит на следующую стадию
func (s *Session) AdvanceStage() {
	s.Stage++
}

// CommitHighScore переносит счёт в рекорд, если он не меньше прежнего.
// Возвращает true, когда нужно показать "новый рекорд".
func (s *Session) CommitHighScore() bool {
	if s.Score >= s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}
