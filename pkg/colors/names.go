package colors

import (
	"sort"
	"strings"
)

// named holds the CSS basic color keywords plus a few aliases the CLI
// accepts in place of hex strings.
var named = map[string]Color{
	"black":       {R: 0, G: 0, B: 0, A: 1},
	"silver":      From8Bit(0xC0, 0xC0, 0xC0, 0xFF),
	"gray":        From8Bit(0x80, 0x80, 0x80, 0xFF),
	"grey":        From8Bit(0x80, 0x80, 0x80, 0xFF),
	"white":       {R: 1, G: 1, B: 1, A: 1},
	"maroon":      From8Bit(0x80, 0x00, 0x00, 0xFF),
	"red":         {R: 1, G: 0, B: 0, A: 1},
	"purple":      From8Bit(0x80, 0x00, 0x80, 0xFF),
	"fuchsia":     {R: 1, G: 0, B: 1, A: 1},
	"magenta":     {R: 1, G: 0, B: 1, A: 1},
	"green":       From8Bit(0x00, 0x80, 0x00, 0xFF),
	"lime":        {R: 0, G: 1, B: 0, A: 1},
	"olive":       From8Bit(0x80, 0x80, 0x00, 0xFF),
	"yellow":      {R: 1, G: 1, B: 0, A: 1},
	"navy":        From8Bit(0x00, 0x00, 0x80, 0xFF),
	"blue":        {R: 0, G: 0, B: 1, A: 1},
	"teal":        From8Bit(0x00, 0x80, 0x80, 0xFF),
	"aqua":        {R: 0, G: 1, B: 1, A: 1},
	"cyan":        {R: 0, G: 1, B: 1, A: 1},
	"orange":      From8Bit(0xFF, 0xA5, 0x00, 0xFF),
	"transparent": {},
}

// Named looks up a color keyword, case-insensitively.
func Named(name string) (Color, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns the recognized keywords in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for name := range named {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NearestNamed returns the keyword whose color is perceptually closest
// to c in L*a*b* space. Aliases resolve to the alphabetically first name.
func NearestNamed(c Color) string {
	best := ""
	bestDist := 0.0
	for _, name := range Names() {
		if name == "transparent" {
			continue
		}
		d := c.Distance(named[name])
		if best == "" || d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}
