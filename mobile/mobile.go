// mobile/mobile.go
package mobile

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"go-knife-hit/internal/bootstrap"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/logging"
)

var saveDir string

// SetSaveDir задаёт каталог для базы рекордов. Java/Swift слой
// вызывает его до StartGame.
//
//export SetSaveDir
func SetSaveDir(path string) {
	saveDir = path
}

// StartGame собирает игру и передаёт её ebiten
//
//export StartGame
func StartGame() {
	settings := config.DefaultSettings()
	settings.DebugAddr = ""
	if saveDir != "" {
		settings.SaveDir = saveDir
	}
	game, err := bootstrap.New(context.Background(), settings)
	if err != nil {
		logging.Errorf("Game not started: %v", err)
		return
	}
	mobile.SetGame(game)
}

// Dummy нужен gomobile: пакет без экспортируемых функций не собирается.
func Dummy() {}
