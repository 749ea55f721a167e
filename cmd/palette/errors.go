package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// Process exit codes.
const (
	exitOK       = 0
	exitDrift    = 1
	exitInvalid  = 2
	exitInternal = 3
)

var errDrift = errors.New("generated artifacts are out of date")

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDrift):
		return exitDrift
	case paletteerrors.IsInvalidInput(err):
		return exitInvalid
	default:
		return exitInternal
	}
}

// reportError prints err, expanding schema violations one per line.
func reportError(w io.Writer, err error) {
	var violations *paletteerrors.SchemaViolationError
	if errors.As(err, &violations) && len(violations.Violations) > 0 {
		fmt.Fprintln(w, "Error: token set violates the schema:")
		for _, v := range violations.Violations {
			fmt.Fprintf(w, "  %s\n", v)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// exactArgs is cobra.ExactArgs classified as invalid input.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return paletteerrors.NewValidationError("args", err.Error(), err)
		}
		return nil
	}
}

func flagError(_ *cobra.Command, err error) error {
	return paletteerrors.NewValidationError("flags", err.Error(), err)
}
