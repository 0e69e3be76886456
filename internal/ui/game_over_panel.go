// internal/ui/game_over_panel.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-knife-hit/internal/app"
	"go-knife-hit/internal/config"
)

// GameOverView — итоги партии
type GameOverView struct {
	fonts         *Fonts
	RestartButton *Button
	HomeButton    *Button
}

func NewGameOverView(fonts *Fonts) *GameOverView {
	cx := config.ScreenWidth / 2
	return &GameOverView{
		fonts:         fonts,
		RestartButton: NewButton(cx-140, 600, 280, 70, "RESTART", config.ButtonAccentColor),
		HomeButton:    NewButton(cx-140, 690, 280, 60, "HOME", config.ButtonColor),
	}
}

func (v *GameOverView) Draw(screen *ebiten.Image, p *app.GameOverPanel) {
	if p == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	cx := float64(config.ScreenWidth / 2)
	DrawText(screen, p.Score, v.fonts.Title, cx, 260, config.TextLightColor, text.AlignCenter)
	DrawText(screen, p.Stage, v.fonts.Regular, cx, 330, config.StageIconNormalColor, text.AlignCenter)
	if p.NewBest {
		DrawOutlinedText(screen, "NEW BEST!", v.fonts.Large, cx, 400, config.NewBestColor, config.TextDarkColor, 2)
	}

	v.RestartButton.Draw(screen, v.fonts.Regular)
	v.HomeButton.Draw(screen, v.fonts.Regular)
}
