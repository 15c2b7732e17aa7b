package game

import (
	"image"
	"image/color"
)

// debug font glyph width in pixels
const charWidth = 6

// shade scales the RGB channels of c by f, keeping alpha.
func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(clamp01(float64(v)/255*f) * 255) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func textWidth(s string) int {
	return len(s) * charWidth
}

// rectF converts r into the float32 x, y, width, height the vector package takes.
func rectF(r image.Rectangle) (float32, float32, float32, float32) {
	return float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
}
