package colors

import (
	"fmt"
	"strconv"
	"strings"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

// maxLenientDigits caps the lenient scan so the accumulator cannot
// overflow; channel masks ignore everything above 24 bits anyway.
const maxLenientDigits = 16

// ParseHex parses a strict "#RRGGBB" or "RRGGBB" string into an opaque
// Color. Surrounding whitespace is trimmed and hex digits are
// case-insensitive; anything else is rejected with a *errors.HexError.
// ParseHex is the recommended entry point; ParseHexLenient preserves the
// legacy zero-filling behavior.
func ParseHex(s string) (Color, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "#")

	if cleaned == "" {
		return Color{}, swatcherrors.NewHexError(s, "empty input", nil)
	}
	if len(cleaned) != 6 {
		return Color{}, swatcherrors.NewHexError(s, fmt.Sprintf("expected 6 hex digits, got %d", len(cleaned)), nil)
	}
	for _, r := range cleaned {
		if !isHexDigit(r) {
			return Color{}, swatcherrors.NewHexError(s, fmt.Sprintf("invalid hex digit %q", r), nil)
		}
	}

	v, err := strconv.ParseUint(cleaned, 16, 32)
	if err != nil {
		return Color{}, swatcherrors.NewHexError(s, "value out of range", err)
	}

	return fromHexValue(v), nil
}

// ParseHexLenient parses a hex color the way a forgiving scanner would:
// trim whitespace, strip one leading '#', then consume the longest hex
// digit prefix as a single unsigned integer and decompose it as RRGGBB.
// It never fails. An empty or fully invalid string yields black; a short
// string behaves as if left-padded with zeros ("FF5" parses as 0x000FF5).
// Prefer ParseHex unless this zero-filling behavior is specifically wanted.
func ParseHexLenient(s string) Color {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "#")

	var v uint64
	digits := 0
	for _, r := range cleaned {
		d, ok := hexDigitValue(r)
		if !ok {
			break
		}
		v = v<<4 | uint64(d)
		digits++
		if digits == maxLenientDigits {
			break
		}
	}

	return fromHexValue(v)
}

// Hex serializes the color as "#RRGGBB" with uppercase digits. Channels
// are scaled by 255 and truncated, not rounded; alpha is not encoded.
func (c Color) Hex() string {
	r := uint32(to8bit(c.R))
	g := uint32(to8bit(c.G))
	b := uint32(to8bit(c.B))
	return fmt.Sprintf("#%06X", r<<16|g<<8|b)
}

func fromHexValue(v uint64) Color {
	return Color{
		R: float64((v>>16)&0xFF) / 255.0,
		G: float64((v>>8)&0xFF) / 255.0,
		B: float64(v&0xFF) / 255.0,
		A: 1,
	}
}

func isHexDigit(r rune) bool {
	_, ok := hexDigitValue(r)
	return ok
}

func hexDigitValue(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, true
	default:
		return 0, false
	}
}
