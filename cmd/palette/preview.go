package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/preview"
	"github.com/alexisbeaulieu97/palette/internal/tui/browser"
	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	var (
		dark  bool
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the theme's color swatches and token values in the terminal",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}

			theme, title := p.themes.Light, "light"
			if dark {
				theme, title = p.themes.Dark, "dark"
			}

			out := cmd.OutOrStdout()
			rendered, err := preview.Render(theme, preview.Options{
				Title: fmt.Sprintf("Palette (%s)", title),
				Plain: plain || !isTerminal(out),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Preview the dark theme")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print hex codes instead of colored swatches")
	return cmd
}

var errNotInteractive = paletteerrors.NewValidationError("stdout", "browse needs an interactive terminal; use `palette preview` instead", nil)

var browseRunner = func(cmd *cobra.Command, model browser.Model) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errNotInteractive
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse color roles and shades interactively",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}

			model, err := browser.NewModel(p.themes)
			if err != nil {
				return err
			}
			return browseRunner(cmd, model)
		},
	}
}
