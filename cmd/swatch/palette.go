package main

import "github.com/spf13/cobra"

func newPaletteCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Work with YAML palette files",
		Long:  "Work with YAML palette files, including rendering, contrast checking, and diffing.",
		Aliases: []string{
			"pal",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPaletteShowCmd(rootFlags))
	cmd.AddCommand(newPaletteCheckCmd(rootFlags))
	cmd.AddCommand(newPaletteDiffCmd(rootFlags))

	return cmd
}
