package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/pkg/colors"
)

type contrastOptions struct {
	jsonOutput bool
	lenient    bool
	min        float64
}

type contrastPayload struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Grade      string  `json:"grade"`
	AANormal   bool    `json:"aa_normal"`
	AALarge    bool    `json:"aa_large"`
	AAANormal  bool    `json:"aaa_normal"`
	AAALarge   bool    `json:"aaa_large"`
}

func newContrastCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Grade a foreground/background pair against WCAG thresholds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the contrast report as JSON")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Salvage malformed hex input instead of rejecting it")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "Fail unless the ratio meets this minimum (e.g. 4.5)")

	return cmd
}

func runContrast(cmd *cobra.Command, rootFlags *rootFlags, fgArg, bgArg string, opts *contrastOptions) error {
	fg, err := resolveColor(fgArg, opts.lenient)
	if err != nil {
		return newCommandError("contrast", fmt.Sprintf("parsing foreground color %q", fgArg), err, "Pass a 6-digit hex value like #1A2B3C or a CSS keyword.")
	}

	bg, err := resolveColor(bgArg, opts.lenient)
	if err != nil {
		return newCommandError("contrast", fmt.Sprintf("parsing background color %q", bgArg), err, "Pass a 6-digit hex value like #FFFFFF or a CSS keyword.")
	}

	ratio := colors.ContrastRatio(fg, bg)

	log := newLogger(rootFlags)
	log.WithFields(map[string]any{
		"command":    "contrast",
		"foreground": fg.Hex(),
		"background": bg.Hex(),
		"ratio":      ratio,
	}).Debug("contrast computed")

	if opts.jsonOutput {
		payload := contrastPayload{
			Foreground: fg.Hex(),
			Background: bg.Hex(),
			Ratio:      ratio,
			Grade:      colors.Grade(ratio),
			AANormal:   colors.PassesAA(fg, bg, false),
			AALarge:    colors.PassesAA(fg, bg, true),
			AAANormal:  colors.PassesAAA(fg, bg, false),
			AAALarge:   colors.PassesAAA(fg, bg, true),
		}
		if err := writeJSON(cmd, payload); err != nil {
			return err
		}
	} else {
		renderer := newRenderer(cmd, rootFlags)
		fmt.Fprint(cmd.OutOrStdout(), renderer.ContrastReport(fg, bg))
	}

	if opts.min > 0 && ratio < opts.min {
		return fmt.Errorf("contrast ratio %.2f:1 is below the required minimum %.2f:1", ratio, opts.min)
	}

	return nil
}
