package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// DefaultFileName is looked up when no --config flag is given.
const DefaultFileName = "palette.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file, layers it over Default, validates it, and returns the result.
func ParseConfig(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, paletteerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !isEmptyDocument(err) {
		return nil, paletteerrors.NewParseError(path, ExtractLine(err), err)
	}

	cfg.BaseDir = filepath.Dir(path)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isEmptyDocument reports the io.EOF yaml.v3 returns for an empty file.
func isEmptyDocument(err error) bool {
	return errors.Is(err, io.EOF)
}

// ExtractLine pulls the line number out of a yaml.v3 error message, or returns 0.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

// ResolvePath anchors a config-relative path at BaseDir.
func (c *Config) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// OutputPath returns the location of an artifact file, or "" when it is disabled.
func (c *Config) OutputPath(name string) string {
	if name == "" {
		return ""
	}
	return c.ResolvePath(filepath.Join(c.Outputs.Dir, name))
}
