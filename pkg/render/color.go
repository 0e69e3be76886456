// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies RGB by k, alpha stays.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	clamp := func(v float64) uint8 {
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return uint8(v)
	}
	return color.RGBA{
		R: clamp(float64(c.R) * k),
		G: clamp(float64(c.G) * k),
		B: clamp(float64(c.B) * k),
		A: c.A,
	}
}

// WithAlpha returns c with a premultiplied alpha of a (0..1).
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
