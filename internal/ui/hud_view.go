// internal/ui/hud_view.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-knife-hit/internal/app"
	"go-knife-hit/internal/config"
)

const (
	stripY       = 120
	iconSize     = 16
	iconGap      = 10
	counterX     = 40
	counterY     = config.ScreenHeight - 80
	counterStep  = 26
	counterKnife = 20
)

// HUDView рисует счёт, полоску стадий, счётчик ножей и баннеры
type HUDView struct {
	fonts       *Fonts
	SoundButton *Button
}

func NewHUDView(fonts *Fonts) *HUDView {
	return &HUDView{
		fonts:       fonts,
		SoundButton: NewButton(config.ScreenWidth-84, 20, 64, 40, "SND", config.ButtonColor),
	}
}

func (v *HUDView) Draw(screen *ebiten.Image, h app.HUD, soundOn bool) {
	DrawText(screen, h.Score, v.fonts.Large, 30, 40, config.TextLightColor, text.AlignStart)
	DrawText(screen, fmt.Sprintf("apples %d", h.Apples), v.fonts.Small, 30, 80, config.AppleColor, text.AlignStart)

	v.SoundButton.Text = "SND"
	v.SoundButton.BgColor = config.ButtonColor
	if !soundOn {
		v.SoundButton.Text = "OFF"
		v.SoundButton.BgColor = config.KnifeCounterUsedColor
	}
	v.SoundButton.Draw(screen, v.fonts.Small)

	v.drawStageStrip(screen, h)
	v.drawKnifeCounter(screen, h)

	if h.Banner != "" {
		v.drawBanner(screen, h.Banner)
	}
}

func (v *HUDView) drawStageStrip(screen *ebiten.Image, h app.HUD) {
	n := len(h.StageIcons)
	total := n*iconSize + (n-1)*iconGap
	x := float32(config.ScreenWidth-total) / 2
	for i, icon := range h.StageIcons {
		if !icon.Visible {
			continue
		}
		clr := config.StageIconNormalColor
		if icon.Active {
			clr = config.StageIconActiveColor
		}
		ix := x + float32(i*(iconSize+iconGap))
		size := float32(iconSize)
		if i == n-1 {
			// Последняя иконка — стадия босса, крупнее
			size *= 1.4
			ix -= (size - iconSize) / 2
		}
		vector.DrawFilledRect(screen, ix, stripY, size, size, clr, true)
	}
	DrawText(screen, h.StageLabel, v.fonts.Regular, config.ScreenWidth/2, stripY+50, h.StageColor, text.AlignCenter)
}

// drawKnifeCounter — столбик ножей слева внизу; брошенные тускнеют
func (v *HUDView) drawKnifeCounter(screen *ebiten.Image, h app.HUD) {
	for i := 0; i < h.KnivesTotal; i++ {
		clr := config.KnifeCounterColor
		if i < h.KnivesUsed {
			clr = config.KnifeCounterUsedColor
		}
		y := float32(counterY - i*counterStep)
		vector.DrawFilledRect(screen, counterX, y, 6, counterKnife*0.6, clr, true)
		vector.DrawFilledRect(screen, counterX-1, y+counterKnife*0.6, 8, counterKnife*0.4, clr, true)
	}
}

func (v *HUDView) drawBanner(screen *ebiten.Image, banner string) {
	y := float32(config.TargetCenterY - 40)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, 80, config.BossBannerColor, true)
	DrawOutlinedText(screen, banner, v.fonts.Large, config.ScreenWidth/2, float64(y)+40, config.TextLightColor, config.TextDarkColor, 2)
}
