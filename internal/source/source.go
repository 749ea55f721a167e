// Package source resolves theme references from palette.yaml into validated token sets.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/palette/internal/config"
	"github.com/alexisbeaulieu97/palette/internal/logger"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// Format identifies how a theme file is encoded.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
)

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonc":
		return FormatJSONC, nil
	default:
		return "", paletteerrors.NewValidationError("theme", fmt.Sprintf("unsupported theme file extension %q (want .yaml, .yml, .json, or .jsonc)", filepath.Ext(path)), nil)
	}
}

// Pair is a resolved light theme and its dark counterpart.
type Pair struct {
	Light tokens.ThemeTokens
	Dark  tokens.ThemeTokens
}

// Loader reads theme files relative to a base directory.
type Loader struct {
	fs      afero.Fs
	baseDir string
	log     *logger.Logger
}

// NewLoader constructs a Loader. A nil logger discards output.
func NewLoader(fs afero.Fs, baseDir string, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{fs: fs, baseDir: baseDir, log: log}
}

// Resolve loads both themes named by refs.
func (l *Loader) Resolve(refs config.Themes) (Pair, error) {
	light, err := l.Light(refs.Light)
	if err != nil {
		return Pair{}, err
	}
	dark, err := l.Dark(light, refs.Dark)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Light: light, Dark: dark}, nil
}

// Light resolves "default", "dark", or a theme file path.
func (l *Loader) Light(ref string) (tokens.ThemeTokens, error) {
	switch ref {
	case "", config.ThemeDefault:
		return tokens.DefaultTheme(), nil
	case config.ThemeBuiltinDark:
		return tokens.DarkTheme(), nil
	default:
		return l.LoadFile(ref)
	}
}

// Dark resolves "derived", "builtin", or a theme file path against light.
// "builtin" supplies only colors; the light theme's other tokens are kept.
// A dark file must repeat the light theme's non-color tokens exactly. Every
// dark theme that is not derived must change the edge shades of each role.
func (l *Loader) Dark(light tokens.ThemeTokens, ref string) (tokens.ThemeTokens, error) {
	switch ref {
	case "", config.DarkDerived:
		l.log.Debug("deriving dark theme from light")
		return tokens.DeriveDark(light)
	case config.DarkBuiltin:
		dark := light
		dark.Colors = tokens.DarkTheme().Colors
		if err := tokens.CheckDivergence(light, dark); err != nil {
			return tokens.ThemeTokens{}, fmt.Errorf("builtin dark theme: %w", err)
		}
		return dark, nil
	default:
		dark, err := l.LoadFile(ref)
		if err != nil {
			return tokens.ThemeTokens{}, err
		}
		if err := tokens.CheckShared(light, dark); err != nil {
			return tokens.ThemeTokens{}, fmt.Errorf("%s: %w", ref, err)
		}
		if err := tokens.CheckDivergence(light, dark); err != nil {
			return tokens.ThemeTokens{}, fmt.Errorf("%s: %w", ref, err)
		}
		return dark, nil
	}
}

// LoadFile reads and validates a theme file. Relative paths resolve against the base directory.
func (l *Loader) LoadFile(path string) (tokens.ThemeTokens, error) {
	resolved := path
	if !filepath.IsAbs(resolved) && l.baseDir != "" {
		resolved = filepath.Join(l.baseDir, resolved)
	}

	format, err := FormatFromPath(resolved)
	if err != nil {
		return tokens.ThemeTokens{}, err
	}

	data, err := afero.ReadFile(l.fs, resolved)
	if err != nil {
		return tokens.ThemeTokens{}, paletteerrors.NewParseError(resolved, 0, err)
	}

	l.log.WithFields(map[string]any{"path": resolved, "format": string(format)}).Debug("loading theme file")

	t, err := Parse(data, format)
	if err != nil {
		return tokens.ThemeTokens{}, fmt.Errorf("%s: %w", resolved, err)
	}
	return t, nil
}

// Parse decodes theme data in the given format. A document with a top-level
// "version" key is treated as a serializer envelope; anything else is a bare
// token set. Either way the result is validated.
func Parse(data []byte, format Format) (tokens.ThemeTokens, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatJSONC:
		return parseJSON(jsonc.ToJSON(data))
	case FormatYAML:
		return parseYAML(data)
	default:
		return tokens.ThemeTokens{}, fmt.Errorf("unknown theme format %q", format)
	}
}

func parseJSON(data []byte) (tokens.ThemeTokens, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		// Deserialize classifies syntax errors.
		return tokens.Deserialize(string(data))
	}

	if _, ok := probe["version"]; ok {
		return tokens.Deserialize(string(data))
	}

	t, err := tokens.DecodeTokens(data)
	if err != nil {
		return tokens.ThemeTokens{}, err
	}
	return tokens.Validate(t)
}

type yamlEnvelope struct {
	Version string             `yaml:"version"`
	Tokens  tokens.ThemeTokens `yaml:"tokens"`
}

func parseYAML(data []byte) (tokens.ThemeTokens, error) {
	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return tokens.ThemeTokens{}, paletteerrors.NewMalformedDocument(0, err)
	}
	if probe == nil {
		return tokens.ThemeTokens{}, paletteerrors.NewSchemaViolation(
			[]paletteerrors.Violation{{Path: "tokens", Rule: "required"}}, nil)
	}

	if _, ok := probe["version"]; ok {
		var env yamlEnvelope
		if err := decodeYAMLStrict(data, &env); err != nil {
			return tokens.ThemeTokens{}, err
		}
		if env.Version != tokens.SerializerVersion {
			return tokens.ThemeTokens{}, paletteerrors.NewUnsupportedVersion(env.Version, tokens.SerializerVersion)
		}
		return tokens.Validate(env.Tokens)
	}

	var t tokens.ThemeTokens
	if err := decodeYAMLStrict(data, &t); err != nil {
		return tokens.ThemeTokens{}, err
	}
	return tokens.Validate(t)
}

func decodeYAMLStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return paletteerrors.NewSchemaViolation([]paletteerrors.Violation{{
			Path: "tokens",
			Rule: strings.TrimPrefix(err.Error(), "yaml: "),
		}}, err)
	}
	return nil
}
