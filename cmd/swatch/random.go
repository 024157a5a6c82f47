package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/pkg/colors"
)

type randomOptions struct {
	pastel     bool
	count      int
	seed       int64
	jsonOutput bool
}

func newRandomCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &randomOptions{}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Sample random colors, optionally from the pastel range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.pastel, "pastel", false, "Sample soft colors with high brightness and low saturation")
	cmd.Flags().IntVar(&opts.count, "count", 1, "Number of colors to sample")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed the generator for reproducible output")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output sampled colors as JSON")

	return cmd
}

func runRandom(cmd *cobra.Command, rootFlags *rootFlags, opts *randomOptions) error {
	if opts.count < 1 {
		return newCommandError("random", "validating flags", errors.New("--count must be at least 1"), "Request one or more colors.")
	}

	// A nil source keeps the package-level generator, so unseeded runs
	// differ from invocation to invocation.
	var rng *rand.Rand
	if cmd.Flags().Changed("seed") {
		rng = rand.New(rand.NewSource(opts.seed))
	}

	sampled := make([]colors.Color, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		if opts.pastel {
			sampled = append(sampled, colors.RandomPastelFrom(rng))
		} else {
			sampled = append(sampled, colors.RandomFrom(rng))
		}
	}

	log := newLogger(rootFlags)
	log.WithFields(map[string]any{"command": "random", "count": opts.count, "pastel": opts.pastel}).Debug("colors sampled")

	if opts.jsonOutput {
		payloads := make([]colorPayload, 0, len(sampled))
		for _, c := range sampled {
			payloads = append(payloads, newColorPayload(c))
		}
		return writeJSON(cmd, payloads)
	}

	out := cmd.OutOrStdout()
	terminal := isTerminalWriter(out)
	renderer := newRenderer(cmd, rootFlags)
	for _, c := range sampled {
		if terminal {
			fmt.Fprintf(out, "%s  %s\n", renderer.Swatch(c), c.Hex())
		} else {
			fmt.Fprintln(out, c.Hex())
		}
	}

	return nil
}
