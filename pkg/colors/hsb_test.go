package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSBOfPrimaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		color   Color
		h, s, b float64
	}{
		{"red", Red, 0, 1, 1},
		{"green", Green, 1.0 / 3.0, 1, 1},
		{"blue", Blue, 2.0 / 3.0, 1, 1},
		{"yellow", NewRGB(1, 1, 0), 1.0 / 6.0, 1, 1},
		{"white", White, 0, 0, 1},
		{"black", Black, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, b := tt.color.HSB()
			assert.InDelta(t, tt.h, h, 1e-9)
			assert.InDelta(t, tt.s, s, 1e-9)
			assert.InDelta(t, tt.b, b, 1e-9)
		})
	}
}

func TestNewHSBWrapsHue(t *testing.T) {
	t.Parallel()

	base := NewHSB(0.25, 0.5, 0.5)
	assert.Equal(t, base, NewHSB(1.25, 0.5, 0.5))
	assert.Equal(t, base, NewHSB(-0.75, 0.5, 0.5))
}

func TestNewHSBClampsSaturationAndBrightness(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewHSB(0, 1, 1), NewHSB(0, 2, 5))
	assert.Equal(t, NewHSB(0.5, 0, 0), NewHSB(0.5, -1, -1))
}

func TestHSBRoundTrip(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#336699", "#FF5733", "#00FF00", "#123456"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)

		h, s, b := c.HSB()
		back := NewHSB(h, s, b)
		assert.InDelta(t, c.R, back.R, 1e-9, "red channel of %s", hex)
		assert.InDelta(t, c.G, back.G, 1e-9, "green channel of %s", hex)
		assert.InDelta(t, c.B, back.B, 1e-9, "blue channel of %s", hex)
	}
}

func TestLighterRaisesOnlyBrightness(t *testing.T) {
	t.Parallel()

	c, err := ParseHex("#336699")
	require.NoError(t, err)
	h0, s0, b0 := c.HSB()

	h, s, b := c.Lighter(0.2).HSB()
	assert.InDelta(t, h0, h, 1e-9)
	assert.InDelta(t, s0, s, 1e-9)
	assert.InDelta(t, b0+0.2, b, 1e-9)
}

func TestLighterCapsAtFullBrightness(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#FFFFFF", White.Lighter(0.5).Hex())
	assert.Equal(t, "#FF0000", Red.Lighter(0.3).Hex())

	_, _, b := NewHSB(0.5, 0.5, 0.9).Lighter(0.5).HSB()
	assert.InDelta(t, 1.0, b, 1e-9)
}

func TestDarkerLowersOnlyBrightness(t *testing.T) {
	t.Parallel()

	c, err := ParseHex("#336699")
	require.NoError(t, err)
	h0, s0, b0 := c.HSB()

	h, s, b := c.Darker(0.2).HSB()
	assert.InDelta(t, h0, h, 1e-9)
	assert.InDelta(t, s0, s, 1e-9)
	assert.InDelta(t, b0-0.2, b, 1e-9)
}

func TestDarkerFloorsAtBlack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#000000", Black.Darker(0.5).Hex())

	_, _, b := NewHSB(0.5, 0.5, 0.1).Darker(0.5).HSB()
	assert.InDelta(t, 0.0, b, 1e-9)
}

func TestDarkerOnWhiteYieldsGray(t *testing.T) {
	t.Parallel()

	// 0.75 brightness on a gray lands mid-bucket: 0.75*255 truncates to 191.
	assert.Equal(t, "#BFBFBF", White.Darker(0.25).Hex())
}

func TestLighterAndDarkerClampPercentage(t *testing.T) {
	t.Parallel()

	c := NewHSB(0.3, 0.4, 0.5)

	_, _, bLight := c.Lighter(5).HSB()
	assert.InDelta(t, 1.0, bLight, 1e-9)

	_, _, bNeg := c.Lighter(-1).HSB()
	assert.InDelta(t, 0.5, bNeg, 1e-9)

	_, _, bDark := c.Darker(5).HSB()
	assert.InDelta(t, 0.0, bDark, 1e-9)
}

func TestWithBrightnessReplacesBrightness(t *testing.T) {
	t.Parallel()

	c, err := ParseHex("#808080")
	require.NoError(t, err)

	// 0.25*255 = 63.75, truncated to 0x3F.
	assert.Equal(t, "#3F3F3F", c.WithBrightness(0.25).Hex())

	_, _, b := c.WithBrightness(0.9).HSB()
	assert.InDelta(t, 0.9, b, 1e-9)
}

func TestWithBrightnessClampsOutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#FF0000", Red.WithBrightness(1.5).Hex())
	assert.Equal(t, "#000000", Red.WithBrightness(-0.5).Hex())
}

func TestBrightnessAdjustmentsPreserveAlpha(t *testing.T) {
	t.Parallel()

	c := New(0.2, 0.4, 0.6, 0.5)

	assert.Equal(t, 0.5, c.Lighter(0.1).A)
	assert.Equal(t, 0.5, c.Darker(0.1).A)
	assert.Equal(t, 0.5, c.WithBrightness(0.3).A)
}
