package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

func validPalette() *Palette {
	return &Palette{
		Version: "1.0",
		Name:    "Test Palette",
		Colors: []Entry{
			{Name: "primary", Hex: "#FF5733", Role: "accent"},
			{Name: "ink", Hex: "1A2B3C"},
		},
	}
}

func TestValidatePaletteAcceptsValidDocument(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePalette(validPalette()))
}

func TestValidatePaletteAcceptsHexWithoutHash(t *testing.T) {
	t.Parallel()

	pal := validPalette()
	pal.Colors[0].Hex = "FF5733"
	require.NoError(t, ValidatePalette(pal))
}

func TestValidatePaletteRejectsNil(t *testing.T) {
	t.Parallel()

	err := ValidatePalette(nil)
	require.Error(t, err)

	var validationErr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidatePaletteRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(pal *Palette)
		wantMsg string
	}{
		{
			name:    "missing version",
			mutate:  func(pal *Palette) { pal.Version = "" },
			wantMsg: "version",
		},
		{
			name:    "missing name",
			mutate:  func(pal *Palette) { pal.Name = "" },
			wantMsg: "name",
		},
		{
			name:    "empty colors",
			mutate:  func(pal *Palette) { pal.Colors = nil },
			wantMsg: "colors",
		},
		{
			name:    "uppercase color name",
			mutate:  func(pal *Palette) { pal.Colors[0].Name = "Primary" },
			wantMsg: "color_name",
		},
		{
			name:    "color name with spaces",
			mutate:  func(pal *Palette) { pal.Colors[0].Name = "primary color" },
			wantMsg: "color_name",
		},
		{
			name:    "short hex",
			mutate:  func(pal *Palette) { pal.Colors[0].Hex = "#F53" },
			wantMsg: "hex6",
		},
		{
			name:    "hex with invalid digits",
			mutate:  func(pal *Palette) { pal.Colors[0].Hex = "#GGGGGG" },
			wantMsg: "hex6",
		},
		{
			name:    "unknown role",
			mutate:  func(pal *Palette) { pal.Colors[0].Role = "decoration" },
			wantMsg: "oneof",
		},
		{
			name:    "invalid background",
			mutate:  func(pal *Palette) { pal.Background = "white" },
			wantMsg: "hex6",
		},
		{
			name: "duplicate color names",
			mutate: func(pal *Palette) {
				pal.Colors = append(pal.Colors, Entry{Name: "primary", Hex: "#000000"})
			},
			wantMsg: "duplicate color name",
		},
		{
			name: "two background roles",
			mutate: func(pal *Palette) {
				pal.Colors[0].Role = "background"
				pal.Colors[1].Role = "background"
			},
			wantMsg: "background role already assigned",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pal := validPalette()
			tc.mutate(pal)

			err := ValidatePalette(pal)
			require.Error(t, err)

			var validationErr *swatcherrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidatePaletteRejectsOversizedColorList(t *testing.T) {
	t.Parallel()

	pal := validPalette()
	pal.Colors = nil
	for i := 0; i < 257; i++ {
		pal.Colors = append(pal.Colors, Entry{Name: fmt.Sprintf("c%d", i), Hex: "#000000"})
	}

	err := ValidatePalette(pal)
	require.Error(t, err)

	var validationErr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, err.Error(), "max")
}

func TestGetValidatorReturnsSharedInstance(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}
