// internal/interfaces/game.go
package interfaces

import (
	"context"

	"github.com/google/uuid"

	"go-knife-hit/internal/ads"
	"go-knife-hit/internal/config"
)

// Navigator переключает сцены (главное меню, игра)
type Navigator interface {
	LoadScene(name string)
}

// SoundPlayer — то, чем игра пользуется из звуковой подсистемы
type SoundPlayer interface {
	PlaySingle(clip config.Clip, volume float64)
	PlayButton()
	PlayTimerSound()
	StopTimerSound()
	SetEnabled(enabled bool)
	Enabled() bool
}

// RewardRequester — запрос награды за рекламу. Итог приходит через Poll
// в потоке игрового цикла.
type RewardRequester interface {
	RequestReward(ctx context.Context, userID string) (uuid.UUID, error)
	Poll() (ads.Result, bool)
}
