package colors

import "math"

// Two brightness notions coexist here and must not be conflated:
// Luma is the quick ITU-R BT.601 heuristic behind IsLight/IsDark, while
// RelativeLuminance is the WCAG 2.0 definition behind contrast ratios.

// WCAG contrast thresholds. Normal text requires 4.5:1 for AA and 7:1
// for AAA; large text lowers those to 3:1 and 4.5:1.
const (
	aaNormal  = 4.5
	aaLarge   = 3.0
	aaaNormal = 7.0
	aaaLarge  = 4.5
)

// Luma returns the perceived brightness 0.299R + 0.587G + 0.114B
// computed on the RGBA components, not HSB brightness.
func (c Color) Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsLight reports whether the color's luma is strictly above 0.5.
func (c Color) IsLight() bool {
	return c.Luma() > 0.5
}

// IsDark is the negation of IsLight.
func (c Color) IsDark() bool {
	return !c.IsLight()
}

// RelativeLuminance returns the WCAG 2.0 relative luminance in [0, 1].
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func (c Color) RelativeLuminance() float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts an sRGB channel to linear light per WCAG 2.0.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1
// (identical luminance) to 21 (white on black). The lighter color is
// selected internally, so the function is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(a, b Color) float64 {
	l1 := a.RelativeLuminance()
	l2 := b.RelativeLuminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// PassesAA reports whether the pair meets WCAG AA contrast: 4.5:1 for
// normal text, 3:1 for large text.
func PassesAA(a, b Color, largeText bool) bool {
	min := aaNormal
	if largeText {
		min = aaLarge
	}
	return ContrastRatio(a, b) >= min
}

// PassesAAA reports whether the pair meets WCAG AAA contrast: 7:1 for
// normal text, 4.5:1 for large text.
func PassesAAA(a, b Color, largeText bool) bool {
	min := aaaNormal
	if largeText {
		min = aaaLarge
	}
	return ContrastRatio(a, b) >= min
}

// Grade names the best WCAG level a contrast ratio satisfies for normal
// text: "AAA", "AA", "AA Large", or "Fail".
func Grade(ratio float64) string {
	switch {
	case ratio >= aaaNormal:
		return "AAA"
	case ratio >= aaNormal:
		return "AA"
	case ratio >= aaLarge:
		return "AA Large"
	default:
		return "Fail"
	}
}
