// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawText рисует строку; (x, y) — точка привязки по align
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// DrawOutlinedText — текст с обводкой, как у индикатора волны
func DrawOutlinedText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr, outline color.Color, thickness int) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, s, face, x+float64(dx), y+float64(dy), outline, text.AlignCenter)
		}
	}
	DrawText(screen, s, face, x, y, clr, text.AlignCenter)
}
