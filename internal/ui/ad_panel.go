// internal/ui/ad_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-knife-hit/internal/app"
	"go-knife-hit/internal/config"
)

const (
	timerRadius   = 70
	timerSegments = 60
)

// AdPanelView — окно "посмотри рекламу и продолжи" с круговым таймером
type AdPanelView struct {
	fonts       *Fonts
	WatchButton *Button
	SkipButton  *Button
}

func NewAdPanelView(fonts *Fonts) *AdPanelView {
	cx := config.ScreenWidth / 2
	return &AdPanelView{
		fonts:       fonts,
		WatchButton: NewButton(cx-140, 620, 280, 70, "CONTINUE (AD)", config.ButtonAccentColor),
		SkipButton:  NewButton(cx-80, 720, 160, 50, "No, thanks", config.ButtonColor),
	}
}

func (v *AdPanelView) Draw(screen *ebiten.Image, p *app.AdPanel) {
	if p == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	cx, cy := float64(config.ScreenWidth/2), 420.0
	DrawText(screen, p.Score, v.fonts.Title, cx, 220, config.TextLightColor, text.AlignCenter)

	vector.StrokeCircle(screen, float32(cx), float32(cy), timerRadius, 10, config.KnifeCounterUsedColor, true)
	drawArc(screen, cx, cy, timerRadius, p.Fill, config.TimerColor)
	DrawText(screen, formatSeconds(p.Remaining), v.fonts.Large, cx, cy, config.TextLightColor, text.AlignCenter)

	if p.Waiting {
		v.WatchButton.Text = "Loading..."
	} else {
		v.WatchButton.Text = "CONTINUE (AD)"
	}
	v.WatchButton.Draw(screen, v.fonts.Regular)
	v.SkipButton.Draw(screen, v.fonts.Small)
}

// drawArc рисует дугу таймера по часовой стрелке от 12 часов; fill — доля 0..1
func drawArc(screen *ebiten.Image, cx, cy, radius, fill float64, clr color.RGBA) {
	n := int(math.Ceil(fill * timerSegments))
	start := -math.Pi / 2
	step := 2 * math.Pi * fill / math.Max(1, float64(n))
	for i := 0; i < n; i++ {
		a0 := start + float64(i)*step
		a1 := a0 + step
		vector.StrokeLine(screen,
			float32(cx+math.Cos(a0)*radius), float32(cy+math.Sin(a0)*radius),
			float32(cx+math.Cos(a1)*radius), float32(cy+math.Sin(a1)*radius),
			10, clr, true)
	}
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.1f", math.Max(0, s))
}
