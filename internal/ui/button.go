// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-knife-hit/internal/config"
)

// Button — прямоугольная кнопка с "пульсом" при нажатии
type Button struct {
	Rect          image.Rectangle
	Text          string
	BgColor       color.RGBA
	TextColor     color.RGBA
	LastClickTime time.Time
}

func NewButton(x, y, w, h int, label string, bg color.RGBA) *Button {
	return &Button{
		Rect:      image.Rect(x, y, x+w, y+h),
		Text:      label,
		BgColor:   bg,
		TextColor: config.TextLightColor,
	}
}

// Contains — точка внутри кнопки
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click отмечает нажатие для анимации
func (b *Button) Click() {
	b.LastClickTime = time.Now()
}

func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 - 0.08*math.Exp(-elapsed*8)

	w := float64(b.Rect.Dx()) * scale
	h := float64(b.Rect.Dy()) * scale
	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	cy := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2
	x, y := cx-w/2, cy-h/2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), b.BgColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), config.StrokeWidth, config.TextLightColor, true)
	DrawText(screen, b.Text, face, cx, cy, b.TextColor, text.AlignCenter)
}
