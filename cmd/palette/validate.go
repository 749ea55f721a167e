package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/source"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

type validateOptions struct {
	Path string
	Dark bool
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <theme-file>",
		Short: "Check a theme file against every token invariant",
		Long: `Validate loads a theme file (.json token document, bare .json, .jsonc, or
.yaml) and checks every invariant: eleven oklch shades per color role, spacing
in multiples of 4px, and no empty token. Exit code 2 reports a violation.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return runValidate(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Dark, "derive-dark", false, "Also check that a dark variant can be derived")
	return cmd
}

func runValidate(cmd *cobra.Command, flags *rootFlags, opts validateOptions) error {
	log, err := newLogger(cmd, flags)
	if err != nil {
		return err
	}

	theme, err := source.NewLoader(flags.fs, "", log).LoadFile(opts.Path)
	if err != nil {
		return err
	}

	if opts.Dark {
		if _, err := tokens.DeriveDark(theme); err != nil {
			return fmt.Errorf("%s: %w", opts.Path, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tokens)\n", opts.Path, len(tokens.Leaves(theme)))
	return nil
}
