// internal/ui/font.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор начертаний интерфейса
type Fonts struct {
	Small   text.Face
	Regular text.Face
	Large   text.Face
	Title   text.Face
}

// LoadFonts собирает шрифты из встроенных Go-шрифтов
func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	face := func(f *opentype.Font, size float64) (text.Face, error) {
		ff, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, err
		}
		return text.NewGoXFace(ff), nil
	}

	fonts := &Fonts{}
	for _, spec := range []struct {
		dst  *text.Face
		font *opentype.Font
		size float64
	}{
		{&fonts.Small, regular, 18},
		{&fonts.Regular, regular, 26},
		{&fonts.Large, bold, 40},
		{&fonts.Title, bold, 64},
	} {
		f, err := face(spec.font, spec.size)
		if err != nil {
			return nil, fmt.Errorf("failed to create %vpt face: %w", spec.size, err)
		}
		*spec.dst = f
	}
	return fonts, nil
}
