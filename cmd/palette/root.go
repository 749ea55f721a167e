package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	theme      string

	// fs backs config, theme, and artifact access.
	fs afero.Fs
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithFs(afero.NewOsFs())
}

func newRootCmdWithFs(fs afero.Fs) *cobra.Command {
	flags := &rootFlags{fs: fs}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Palette manages a design-token theme and its CSS, Tailwind, and JSON projections",
		Long: `Palette holds a validated design-token theme (colors in oklch, spacing,
typography, radii, shadows, transitions), derives its dark variant, and projects
it to CSS custom properties, a Tailwind theme, and a versioned JSON document.

Project settings are read from palette.yaml when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to palette.yaml (default: ./palette.yaml when present)")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", `Light theme: "default", "dark", or a theme file (overrides palette.yaml)`)
	cmd.SetFlagErrorFunc(flagError)

	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newDarkCSSCmd(flags))
	cmd.AddCommand(newTailwindCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
