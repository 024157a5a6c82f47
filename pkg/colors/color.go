// Package colors implements the color value type used across swatch:
// normalized RGBA colors with hex parsing, HSB brightness adjustment,
// and WCAG accessibility metrics. All operations are pure and free of
// shared state, so the package is safe for concurrent use.
package colors

import (
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable RGBA color with float64 channels in [0, 1].
// The zero value is fully transparent black. Every transformation
// returns a new value; nothing mutates in place.
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	Red         = Color{R: 1, G: 0, B: 0, A: 1}
	Green       = Color{R: 0, G: 1, B: 0, A: 1}
	Blue        = Color{R: 0, G: 0, B: 1, A: 1}
	Transparent = Color{}
)

// New returns a Color with each channel clamped into [0, 1].
func New(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// NewRGB returns an opaque Color with each channel clamped into [0, 1].
func NewRGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// From8Bit converts 8-bit channel values to a normalized Color.
func From8Bit(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// FromStdColor adapts any standard library color, de-premultiplying the
// 16-bit channels back to straight alpha.
func FromStdColor(c stdcolor.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}

	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return Transparent
	}

	invA := float64(0xFFFF) / float64(a16)
	return Color{
		R: float64(r16) * invA / 65535.0,
		G: float64(g16) * invA / 65535.0,
		B: float64(b16) * invA / 65535.0,
		A: float64(a16) / 65535.0,
	}
}

// RGBA implements image/color.Color with premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	rf := clamp01(c.R)
	gf := clamp01(c.G)
	bf := clamp01(c.B)
	af := clamp01(c.A)

	return uint32(rf * af * 65535),
		uint32(gf * af * 65535),
		uint32(bf * af * 65535),
		uint32(af * 65535)
}

// NRGBA returns the color as 8-bit straight-alpha channels. Channel
// values truncate rather than round, matching hex serialization.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: to8bit(c.R),
		G: to8bit(c.G),
		B: to8bit(c.B),
		A: to8bit(c.A),
	}
}

// Components returns all four channels. The exported fields are the
// canonical accessors; this tuple form mirrors them exactly.
func (c Color) Components() (r, g, b, a float64) {
	return c.R, c.G, c.B, c.A
}

// WithAlpha returns the color with its alpha replaced by a, clamped into [0, 1].
func (c Color) WithAlpha(a float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// Mix linearly interpolates between c and o with weight t in [0, 1],
// blending all four channels. t is clamped.
func (c Color) Mix(o Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
		A: c.A*(1-t) + o.A*t,
	}
}

// Grayscale returns the color collapsed to its luma, preserving alpha.
func (c Color) Grayscale() Color {
	y := c.Luma()
	return Color{R: y, G: y, B: y, A: c.A}
}

// Distance returns the perceptual distance to o in CIE L*a*b* space.
// Alpha does not participate.
func (c Color) Distance(o Color) float64 {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.DistanceLab(colorful.Color{R: o.R, G: o.G, B: o.B})
}

// --- helpers ---

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8bit truncates toward zero to keep hex output stable across
// the 255-scale round trip.
func to8bit(x float64) uint8 {
	y := 255.0 * clamp01(x)
	if y > 255 {
		y = 255
	}
	return uint8(y)
}
