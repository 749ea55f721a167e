package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palette/internal/build"
	"github.com/alexisbeaulieu97/palette/internal/gitref"
)

func newBuildCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Write every artifact configured in palette.yaml",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}

			artifacts, err := build.Render(p.cfg, p.themes)
			if err != nil {
				return err
			}

			report, err := build.NewService(flags.fs, p.log).Write(cmd.Context(), artifacts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range report.Written {
				fmt.Fprintf(out, "wrote     %s\n", path)
			}
			for _, path := range report.Unchanged {
				fmt.Fprintf(out, "unchanged %s\n", path)
			}
			return nil
		},
	}
}

type checkOptions struct {
	Ref string
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report artifacts that differ from what build would write",
		Long: `Check re-renders every configured artifact and compares it with the file on
disk, or with the committed file at --ref. Each drifted artifact is printed as
a unified diff. Exit code 1 reports drift.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Ref, "ref", "", "Compare against a git revision (e.g. HEAD, main, v1.2.0) instead of the working tree")
	return cmd
}

func runCheck(cmd *cobra.Command, flags *rootFlags, opts checkOptions) error {
	p, err := loadProject(cmd, flags)
	if err != nil {
		return err
	}

	artifacts, err := build.Render(p.cfg, p.themes)
	if err != nil {
		return err
	}

	var reader build.ArtifactReader
	if opts.Ref != "" {
		dir := p.cfg.BaseDir
		if dir == "" {
			dir = "."
		}
		ref, err := gitref.Open(dir, opts.Ref)
		if err != nil {
			return err
		}
		p.log.WithFields(map[string]any{"ref": opts.Ref, "commit": ref.Hash()}).Debug("checking against commit")
		reader = ref
	}

	drifts, err := build.NewService(flags.fs, p.log).Check(cmd.Context(), artifacts, reader)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(drifts) == 0 {
		fmt.Fprintf(out, "%d artifact(s) up to date\n", len(artifacts))
		return nil
	}

	for _, drift := range drifts {
		state := "drifted"
		if drift.Missing {
			state = "missing"
		}
		fmt.Fprintf(out, "%s %s (%s)\n", state, drift.Artifact.Path, drift.Diff.Stats)
		fmt.Fprint(out, drift.Diff.Text)
	}
	return fmt.Errorf("%d of %d artifact(s): %w", len(drifts), len(artifacts), errDrift)
}
