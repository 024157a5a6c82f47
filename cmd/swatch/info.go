package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/pkg/colors"
)

type infoOptions struct {
	jsonOutput bool
	lenient    bool
}

func newInfoCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &infoOptions{}

	cmd := &cobra.Command{
		Use:   "info <color>...",
		Short: "Inspect a color's components, tone, and nearest keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output color details as JSON")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Salvage malformed hex input instead of rejecting it")

	return cmd
}

func runInfo(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *infoOptions) error {
	resolved := make([]colors.Color, 0, len(args))
	for _, arg := range args {
		c, err := resolveColor(arg, opts.lenient)
		if err != nil {
			return newCommandError("info", fmt.Sprintf("parsing color %q", arg), err, "Pass a 6-digit hex value like #FF5733 or a CSS keyword such as teal.")
		}
		resolved = append(resolved, c)
	}

	log := newLogger(rootFlags)
	log.WithFields(map[string]any{"command": "info", "count": len(resolved)}).Debug("colors resolved")

	if opts.jsonOutput {
		payloads := make([]colorPayload, 0, len(resolved))
		for _, c := range resolved {
			payloads = append(payloads, newColorPayload(c))
		}
		return writeJSON(cmd, payloads)
	}

	renderer := newRenderer(cmd, rootFlags)
	for i, c := range resolved {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.Detail(c))
	}
	return nil
}
