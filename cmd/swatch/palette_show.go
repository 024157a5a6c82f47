package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/pkg/colors"
)

type paletteShowOptions struct {
	jsonOutput bool
	matrix     bool
}

type paletteEntryPayload struct {
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Role     string  `json:"role,omitempty"`
	Contrast float64 `json:"contrast"`
	Grade    string  `json:"grade"`
}

type palettePayload struct {
	Name        string                `json:"name"`
	Version     string                `json:"version"`
	Description string                `json:"description,omitempty"`
	Background  string                `json:"background"`
	Colors      []paletteEntryPayload `json:"colors"`
}

func newPaletteShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &paletteShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <palette.yaml>",
		Short: "Render a palette with per-entry contrast against its background",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaletteShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the palette as JSON")
	cmd.Flags().BoolVar(&opts.matrix, "matrix", false, "Render the pairwise contrast matrix instead of the table")

	return cmd
}

func runPaletteShow(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *paletteShowOptions) error {
	pal, err := config.ParsePalette(path)
	if err != nil {
		return newCommandError("palette show", fmt.Sprintf("loading palette %q", path), err, "Check the file path and fix any validation errors it reports.")
	}

	log := newLogger(rootFlags)
	log.WithFields(map[string]any{"command": "palette show", "path": path, "colors": len(pal.Colors)}).Debug("palette loaded")

	if opts.jsonOutput {
		return writeJSON(cmd, newPalettePayload(pal))
	}

	renderer := newRenderer(cmd, rootFlags)
	if opts.matrix {
		fmt.Fprint(cmd.OutOrStdout(), renderer.ContrastMatrix(pal))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.PaletteTable(pal))
	return nil
}

func newPalettePayload(pal *config.Palette) palettePayload {
	bg := pal.BackgroundColor()

	entries := make([]paletteEntryPayload, 0, len(pal.Colors))
	for _, entry := range pal.Colors {
		ratio := colors.ContrastRatio(entry.Color(), bg)
		entries = append(entries, paletteEntryPayload{
			Name:     entry.Name,
			Hex:      entry.Color().Hex(),
			Role:     entry.Role,
			Contrast: ratio,
			Grade:    colors.Grade(ratio),
		})
	}

	return palettePayload{
		Name:        pal.Name,
		Version:     pal.Version,
		Description: pal.Description,
		Background:  bg.Hex(),
		Colors:      entries,
	}
}
