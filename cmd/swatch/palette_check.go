package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/config"
)

type paletteCheckOptions struct {
	against string
	min     float64
	large   bool
}

func newPaletteCheckCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &paletteCheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <palette.yaml>",
		Short: "Verify every palette entry meets a minimum contrast ratio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaletteCheck(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.against, "against", "", "Check against this background instead of the palette's own")
	cmd.Flags().Float64Var(&opts.min, "min", 4.5, "Minimum required contrast ratio")
	cmd.Flags().BoolVar(&opts.large, "large", false, "Use the AA large-text threshold (3.0:1) unless --min is set")

	return cmd
}

func runPaletteCheck(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *paletteCheckOptions) error {
	pal, err := config.ParsePalette(path)
	if err != nil {
		return newCommandError("palette check", fmt.Sprintf("loading palette %q", path), err, "Check the file path and fix any validation errors it reports.")
	}

	if opts.against != "" {
		bg, err := resolveColor(opts.against, false)
		if err != nil {
			return newCommandError("palette check", fmt.Sprintf("parsing background %q", opts.against), err, "Pass a 6-digit hex value or a CSS keyword.")
		}
		// Writing the explicit background field reuses the palette's
		// own precedence rules for the rest of the command.
		pal.Background = bg.Hex()
	}

	min := opts.min
	if opts.large && !cmd.Flags().Changed("min") {
		min = 3.0
	}

	log := newLogger(rootFlags)
	log.WithFields(map[string]any{
		"command": "palette check",
		"path":    path,
		"min":     min,
		"colors":  len(pal.Colors),
	}).Debug("palette checked")

	renderer := newRenderer(cmd, rootFlags)
	report, allPassed := renderer.CheckReport(pal, min)
	fmt.Fprint(cmd.OutOrStdout(), report)

	if !allPassed {
		return fmt.Errorf("palette %q has colors below the %.2f:1 contrast minimum", pal.Name, min)
	}

	return nil
}
