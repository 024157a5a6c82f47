package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/tui"
)

var exploreCmdRunner = runExplore

func newExploreCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [palette.yaml]",
		Short: "Launch the interactive color explorer",
		Long:  "Launch the interactive TUI explorer to browse a palette and preview adjustments live.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pal *config.Palette
			path := ""
			if len(args) == 1 {
				path = args[0]
				loaded, err := config.ParsePalette(path)
				if err != nil {
					return newCommandError("explore", fmt.Sprintf("loading palette %q", path), err, "Check the file path and fix any validation errors it reports.")
				}
				pal = loaded
			}

			if !isTerminalWriter(cmd.OutOrStdout()) {
				return newCommandError("explore", "checking the terminal", errors.New("explore requires an interactive terminal"), "Run swatch explore directly in a TTY, not through a pipe.")
			}

			return exploreCmdRunner(rootFlags, pal, path)
		},
	}

	return cmd
}

func runExplore(rootFlags *rootFlags, pal *config.Palette, path string) error {
	log := newLogger(rootFlags)
	log.WithFields(map[string]any{"command": "explore", "palette": path}).Debug("launching explorer")

	p := tea.NewProgram(tui.NewModel(pal, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run explorer: %w", err)
	}

	log.WithFields(map[string]any{"command": "explore"}).Debug("explorer closed")
	return nil
}
