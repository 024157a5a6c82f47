package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/render"
)

type rootFlags struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch inspects, adjusts, and grades colors for terminal work",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newInfoCmd(flags))
	cmd.AddCommand(newContrastCmd(flags))
	cmd.AddCommand(newAdjustCmd(flags))
	cmd.AddCommand(newRandomCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Logs go to stderr; --verbose
// lowers the threshold to debug.
func newLogger(flags *rootFlags) *logger.Logger {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return logger.Nop()
	}
	return log
}

func newRenderer(cmd *cobra.Command, flags *rootFlags) *render.Renderer {
	return render.New(cmd.OutOrStdout(), flags.noColor)
}

// isTerminalWriter reports whether the writer is an interactive
// terminal. Command tests swap in buffers, which are never terminals.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
