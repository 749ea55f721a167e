package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/palette/internal/config"
	"github.com/alexisbeaulieu97/palette/internal/logger"
	"github.com/alexisbeaulieu97/palette/internal/source"
)

// project is everything a command needs once flags and palette.yaml are resolved.
type project struct {
	cfg    *config.Config
	themes source.Pair
	log    *logger.Logger
}

func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
}

// loadConfig reads --config, or ./palette.yaml when it exists, or falls back to defaults.
func loadConfig(fs afero.Fs, flags *rootFlags, log *logger.Logger) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		exists, err := afero.Exists(fs, config.DefaultFileName)
		if err != nil {
			return nil, err
		}
		if !exists {
			log.Debug("no palette.yaml found; using defaults")
			cfg := config.Default()
			return &cfg, nil
		}
		path = config.DefaultFileName
	}

	log.With("config", path).Debug("loading configuration")
	return config.ParseConfig(fs, path)
}

// loadProject resolves configuration and both themes. --theme replaces the configured light theme.
func loadProject(cmd *cobra.Command, flags *rootFlags) (*project, error) {
	log, err := newLogger(cmd, flags)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(flags.fs, flags, log)
	if err != nil {
		return nil, err
	}

	refs := cfg.Themes
	loader := source.NewLoader(flags.fs, cfg.BaseDir, log)
	if flags.theme != "" {
		refs.Light = flags.theme
		// A theme named on the command line resolves against the working directory.
		loader = source.NewLoader(flags.fs, "", log)
		if refs.Dark != config.DarkDerived && refs.Dark != config.DarkBuiltin {
			refs.Dark = cfg.ResolvePath(refs.Dark)
		}
	}

	themes, err := loader.Resolve(refs)
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{"light": refs.Light, "dark": refs.Dark}).Debug("themes resolved")
	return &project{cfg: cfg, themes: themes, log: log}, nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func writeLine(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	if len(text) > 0 && text[len(text)-1] == '\n' {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
