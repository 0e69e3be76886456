// internal/defs/types.go
package defs

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// HexColor — цвет в YAML записывается строкой "#rrggbb" или "#rrggbbaa"
type HexColor string

// RGBA разбирает цвет; при ошибке возвращает белый.
func (c HexColor) RGBA() color.RGBA {
	rgba, err := c.Parse()
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return rgba
}

func (c HexColor) Parse() (color.RGBA, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(string(c), "#"))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", string(c), err)
	}
	switch len(raw) {
	case 3:
		return color.RGBA{raw[0], raw[1], raw[2], 255}, nil
	case 4:
		return color.RGBA{raw[0], raw[1], raw[2], raw[3]}, nil
	default:
		return color.RGBA{}, fmt.Errorf("bad color %q: want #rrggbb or #rrggbbaa", string(c))
	}
}

// Rotation описывает вращение мишени.
type Rotation struct {
	Speed        float64 `yaml:"speed"`         // градусов в секунду, знак задаёт направление
	ReverseEvery float64 `yaml:"reverse_every"` // секунд до смены направления, 0 — без смены
}

// TargetDefinition — статические данные мишени (круга) для одной стадии.
type TargetDefinition struct {
	ID         string    `yaml:"id"`
	TotalKnife int       `yaml:"total_knife"` // Сколько ножей нужно воткнуть
	Rotation   Rotation  `yaml:"rotation"`
	Obstacles  []float64 `yaml:"obstacles"` // Углы ножей, торчащих с самого начала, в градусах
	Apples     []float64 `yaml:"apples"`    // Углы яблок на ободе, в градусах
	Color      HexColor  `yaml:"color"`
}

// BossDefinition — мишень-босс с именем для баннера и надписи стадии.
type BossDefinition struct {
	Name   string           `yaml:"name"`
	Target TargetDefinition `yaml:"target"`
}

// KnifeSkin — внешний вид ножа, выбирается в меню.
type KnifeSkin struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Blade  HexColor `yaml:"blade"`
	Handle HexColor `yaml:"handle"`
}
