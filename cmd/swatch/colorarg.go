package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/pkg/colors"
)

// resolveColor turns a CLI argument into a color. Keywords like "red"
// resolve first; everything else is parsed as hex, strictly unless the
// command runs with --lenient.
func resolveColor(input string, lenient bool) (colors.Color, error) {
	if c, ok := colors.Named(input); ok {
		return c, nil
	}

	if lenient {
		return colors.ParseHexLenient(input), nil
	}

	return colors.ParseHex(input)
}

// colorPayload is the JSON shape shared by info, adjust, and random.
type colorPayload struct {
	Hex        string  `json:"hex"`
	R          uint8   `json:"r"`
	G          uint8   `json:"g"`
	B          uint8   `json:"b"`
	Alpha      float64 `json:"alpha"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	Luma       float64 `json:"luma"`
	Light      bool    `json:"light"`
	Luminance  float64 `json:"luminance"`
	Nearest    string  `json:"nearest"`
}

func newColorPayload(c colors.Color) colorPayload {
	nrgba := c.NRGBA()
	h, s, b := c.HSB()

	return colorPayload{
		Hex:        c.Hex(),
		R:          nrgba.R,
		G:          nrgba.G,
		B:          nrgba.B,
		Alpha:      c.A,
		Hue:        h,
		Saturation: s,
		Brightness: b,
		Luma:       c.Luma(),
		Light:      c.IsLight(),
		Luminance:  c.RelativeLuminance(),
		Nearest:    colors.NearestNamed(c),
	}
}

func writeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
