package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/pkg/diff"
)

func newPaletteDiffCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <before.yaml> <after.yaml>",
		Short: "Show a unified diff between two palettes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaletteDiff(cmd, rootFlags, args[0], args[1])
		},
	}

	return cmd
}

func runPaletteDiff(cmd *cobra.Command, rootFlags *rootFlags, beforePath, afterPath string) error {
	before, err := config.ParsePalette(beforePath)
	if err != nil {
		return newCommandError("palette diff", fmt.Sprintf("loading palette %q", beforePath), err, "Check the file path and fix any validation errors it reports.")
	}

	after, err := config.ParsePalette(afterPath)
	if err != nil {
		return newCommandError("palette diff", fmt.Sprintf("loading palette %q", afterPath), err, "Check the file path and fix any validation errors it reports.")
	}

	log := newLogger(rootFlags)
	log.WithFields(map[string]any{"command": "palette diff", "before": beforePath, "after": afterPath}).Debug("palettes compared")

	out := diff.GeneratePaletteDiff(before, after, beforePath, afterPath)
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "palettes are identical")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
