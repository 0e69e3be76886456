// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"

	"go-knife-hit/internal/app"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/ui"
)

// GameState — сцена "GameScene"
type GameState struct {
	sm     *StateMachine
	scenes *Scenes
	env    *Env
	game   *app.Game

	hud      *ui.HUDView
	adPanel  *ui.AdPanelView
	gameOver *ui.GameOverView
	throws   *rate.Limiter
}

func NewGameState(scenes *Scenes) *GameState {
	env := scenes.env
	gameLogic := app.NewGame(app.Options{
		Context:   env.Ctx,
		Settings:  env.Settings,
		Library:   env.Library,
		Ads:       env.Ads,
		Sound:     env.Sound,
		Store:     env.Store,
		Navigator: scenes,
		Metrics:   env.Metrics,
		SkinID:    env.SkinID,
	})
	return &GameState{
		sm:       scenes.sm,
		scenes:   scenes,
		env:      env,
		game:     gameLogic,
		hud:      ui.NewHUDView(env.Fonts),
		adPanel:  ui.NewAdPanelView(env.Fonts),
		gameOver: ui.NewGameOverView(env.Fonts),
		throws:   rate.NewLimiter(rate.Limit(config.ThrowsPerSecond), config.ThrowBurst),
	}
}

func (g *GameState) Enter() {
	g.game.StartGame()
}

func (g *GameState) Update(deltaTime float64) {
	if g.env.PollLibrary() {
		g.game.SetLibrary(g.env.Library)
	}

	if g.canPause() && (inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if x, y, ok := justPressedPointer(); ok {
		if g.handlePress(x, y) {
			return
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.tap()
	}

	g.game.Update(deltaTime)
}

func (g *GameState) canPause() bool {
	return !g.game.Session.IsGameOver
}

// handlePress разбирает нажатие. true — сцена сменилась, кадр
// дальше не обрабатывается.
func (g *GameState) handlePress(x, y int) bool {
	switch {
	case g.game.GameOverShown():
		if g.gameOver.RestartButton.Contains(x, y) {
			g.gameOver.RestartButton.Click()
			g.game.Restart()
			return true
		}
		if g.gameOver.HomeButton.Contains(x, y) {
			g.gameOver.HomeButton.Click()
			g.game.BackToHome()
			return true
		}
	case g.game.Gate.Active():
		if g.adPanel.WatchButton.Contains(x, y) {
			g.adPanel.WatchButton.Click()
			g.game.AcceptAd()
		} else if g.adPanel.SkipButton.Contains(x, y) {
			g.adPanel.SkipButton.Click()
			g.game.SkipAd()
		}
	case g.hud.SoundButton.Contains(x, y):
		g.hud.SoundButton.Click()
		g.game.ToggleSound()
	default:
		g.tap()
	}
	return false
}

func (g *GameState) tap() {
	if !g.throws.Allow() {
		logging.Debugf("Throw throttled")
		return
	}
	g.game.Tap()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	r := g.env.Renderer
	lib := g.game.Library
	r.DrawTarget(screen, g.game.Sequencer.Current(), lib)
	for _, k := range g.game.Flight.InFlight() {
		r.DrawFlying(screen, k, lib.Skin(k.SkinID))
	}
	for _, k := range g.game.Flight.Falling() {
		r.DrawFalling(screen, k, lib.Skin(k.SkinID))
	}
	if k := g.game.Knives.Staged(); k != nil {
		r.DrawStaged(screen, k, lib.Skin(k.SkinID))
	}

	h := g.game.HUD()
	soundOn := g.env.Sound != nil && g.env.Sound.Enabled()
	g.hud.Draw(screen, h, soundOn)
	g.adPanel.Draw(screen, h.AdPanel)
	g.gameOver.Draw(screen, h.GameOverPanel)
}

func (g *GameState) Exit() {
	if g.env.Sound != nil {
		g.env.Sound.StopTimerSound()
	}
}
