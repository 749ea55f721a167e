package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/build"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

func newCSSCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the theme as a :root block of CSS custom properties",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), tokens.TokensToCSS(p.themes.Light))
		},
	}
}

func newDarkCSSCmd(flags *rootFlags) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "dark-css",
		Short: "Print the dark color overrides scoped to the dark selector",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}
			if selector == "" {
				selector = p.cfg.DarkSelector
			}
			return writeLine(cmd.OutOrStdout(), tokens.GenerateDarkModeCSSWithSelector(p.themes.Light, p.themes.Dark, selector))
		},
	}

	cmd.Flags().StringVar(&selector, "selector", "", "Selector for the dark block (default: dark_selector from palette.yaml)")
	return cmd
}

func newTailwindCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tailwind",
		Short: "Print the theme as a Tailwind theme.extend JSON object",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}
			data, err := build.TailwindJSON(p.themes.Light)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	var dark bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the theme as a versioned JSON token document",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}
			theme := p.themes.Light
			if dark {
				theme = p.themes.Dark
			}
			doc, err := tokens.Serialize(theme)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Export the dark theme instead of the light one")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the token document",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := build.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
