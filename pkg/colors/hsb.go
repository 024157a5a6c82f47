package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Brightness adjustments run through HSB space rather than scaling RGB
// channels directly: scaling RGB shifts hue for non-gray colors, while
// HSB keeps hue and saturation fixed and moves only brightness.
//
// Hue is exposed normalized to [0, 1]; conversion to go-colorful's
// degree convention happens internally.

// NewHSB constructs an opaque Color from hue, saturation, and brightness.
// Hue wraps modulo 1; saturation and brightness are clamped into [0, 1].
func NewHSB(h, s, b float64) Color {
	h -= math.Floor(h)
	return fromHSB(h, clamp01(s), clamp01(b), 1)
}

// HSB returns the color's hue, saturation, and brightness, each in [0, 1].
func (c Color) HSB() (h, s, b float64) {
	hDeg, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return hDeg / 360.0, s, v
}

// WithBrightness returns the color with its brightness channel replaced,
// preserving hue, saturation, and alpha. The value is clamped into
// [0, 1] so that brightness adjustments behave uniformly.
func (c Color) WithBrightness(b float64) Color {
	h, s, _ := c.HSB()
	return fromHSB(h, s, clamp01(b), c.A)
}

// Lighter raises brightness by pct, capped at 1. Hue, saturation, and
// alpha are preserved; pct is clamped into [0, 1].
func (c Color) Lighter(pct float64) Color {
	h, s, b := c.HSB()
	return fromHSB(h, s, math.Min(b+clamp01(pct), 1), c.A)
}

// Darker lowers brightness by pct, floored at 0. Hue, saturation, and
// alpha are preserved; pct is clamped into [0, 1].
func (c Color) Darker(pct float64) Color {
	h, s, b := c.HSB()
	return fromHSB(h, s, math.Max(b-clamp01(pct), 0), c.A)
}

func fromHSB(h, s, b, alpha float64) Color {
	cc := colorful.Hsv(h*360.0, s, b)
	return Color{R: clamp01(cc.R), G: clamp01(cc.G), B: clamp01(cc.B), A: clamp01(alpha)}
}
