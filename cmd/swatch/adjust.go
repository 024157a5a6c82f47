package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type adjustOptions struct {
	lighten    float64
	darken     float64
	brightness float64
	alpha      float64
	mix        string
	weight     float64
	grayscale  bool
	jsonOutput bool
	lenient    bool
}

func newAdjustCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &adjustOptions{}

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Derive a new color through brightness, mix, and alpha operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjust(cmd, rootFlags, args[0], opts)
		},
	}

	flagSet := cmd.Flags()
	flagSet.Float64Var(&opts.lighten, "lighten", 0, "Raise brightness by this fraction (0..1)")
	flagSet.Float64Var(&opts.darken, "darken", 0, "Lower brightness by this fraction (0..1)")
	flagSet.Float64Var(&opts.brightness, "brightness", 0, "Set absolute brightness (0..1)")
	flagSet.Float64Var(&opts.alpha, "alpha", 0, "Set the alpha channel (0..1)")
	flagSet.StringVar(&opts.mix, "mix", "", "Mix with this color (hex or keyword)")
	flagSet.Float64Var(&opts.weight, "weight", 0.5, "Weight of the mixed color (0..1)")
	flagSet.BoolVar(&opts.grayscale, "grayscale", false, "Collapse to the luma-matched gray")
	flagSet.BoolVar(&opts.jsonOutput, "json", false, "Output the adjusted color as JSON")
	flagSet.BoolVar(&opts.lenient, "lenient", false, "Salvage malformed hex input instead of rejecting it")

	return cmd
}

func runAdjust(cmd *cobra.Command, rootFlags *rootFlags, arg string, opts *adjustOptions) error {
	flagSet := cmd.Flags()

	if flagSet.Changed("lighten") && flagSet.Changed("darken") {
		return newCommandError("adjust", "validating flags", errors.New("--lighten and --darken are mutually exclusive"), "Pick one direction per invocation.")
	}

	c, err := resolveColor(arg, opts.lenient)
	if err != nil {
		return newCommandError("adjust", fmt.Sprintf("parsing color %q", arg), err, "Pass a 6-digit hex value like #FF5733 or a CSS keyword.")
	}

	// Absolute brightness applies first so the relative steps and the
	// mix operate on the requested base.
	if flagSet.Changed("brightness") {
		c = c.WithBrightness(opts.brightness)
	}
	if flagSet.Changed("lighten") {
		c = c.Lighter(opts.lighten)
	}
	if flagSet.Changed("darken") {
		c = c.Darker(opts.darken)
	}

	if opts.mix != "" {
		other, err := resolveColor(opts.mix, opts.lenient)
		if err != nil {
			return newCommandError("adjust", fmt.Sprintf("parsing mix color %q", opts.mix), err, "Pass a 6-digit hex value or a CSS keyword.")
		}
		c = c.Mix(other, opts.weight)
	}

	if opts.grayscale {
		c = c.Grayscale()
	}
	if flagSet.Changed("alpha") {
		c = c.WithAlpha(opts.alpha)
	}

	log := newLogger(rootFlags)
	log.WithFields(map[string]any{"command": "adjust", "input": arg, "result": c.Hex()}).Debug("color adjusted")

	if opts.jsonOutput {
		return writeJSON(cmd, newColorPayload(c))
	}

	out := cmd.OutOrStdout()
	if isTerminalWriter(out) {
		renderer := newRenderer(cmd, rootFlags)
		fmt.Fprintf(out, "%s  %s\n", renderer.Swatch(c), c.Hex())
		return nil
	}

	fmt.Fprintln(out, c.Hex())
	return nil
}
