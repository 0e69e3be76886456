// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-knife-hit/internal/config"
	"go-knife-hit/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию поверх игровой сцены. Игровое
// состояние при выходе не перезапускается.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
	resume       *ui.Button
	home         *ui.Button
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	cx := config.ScreenWidth / 2
	return &PauseState{
		stateMachine: sm,
		game:         game,
		resume:       ui.NewButton(cx-140, 480, 280, 70, "RESUME", config.ButtonAccentColor),
		home:         ui.NewButton(cx-140, 570, 280, 60, "HOME", config.ButtonColor),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.unpause()
		return
	}
	x, y, ok := justPressedPointer()
	if !ok {
		return
	}
	switch {
	case s.resume.Contains(x, y):
		s.unpause()
	case s.home.Contains(x, y):
		s.game.game.BackToHome()
	}
}

// unpause возвращает игру без Enter, чтобы партия не началась заново
func (s *PauseState) unpause() {
	s.stateMachine.Resume(s.game)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
	fonts := s.game.env.Fonts
	ui.DrawText(screen, "PAUSED", fonts.Title, config.ScreenWidth/2, 360, config.TextLightColor, text.AlignCenter)
	s.resume.Draw(screen, fonts.Regular)
	s.home.Draw(screen, fonts.Regular)
}

func (s *PauseState) Exit() {}
