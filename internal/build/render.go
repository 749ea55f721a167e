// Package build renders the configured token artifacts, writes them, and
// detects drift between generated and existing files.
package build

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/palette/internal/config"
	"github.com/alexisbeaulieu97/palette/internal/source"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

// Kind names an artifact by the config key that enables it.
type Kind string

const (
	KindCSS        Kind = "css"
	KindTailwind   Kind = "tailwind"
	KindTokens     Kind = "tokens"
	KindDarkTokens Kind = "dark_tokens"
	KindSchema     Kind = "schema"
)

// Artifact is one generated file.
type Artifact struct {
	Kind    Kind
	Path    string
	Content []byte
}

// Render produces every artifact enabled in cfg, in a fixed order. Artifacts
// whose output name is empty are skipped.
func Render(cfg *config.Config, themes source.Pair) ([]Artifact, error) {
	if cfg == nil {
		return nil, fmt.Errorf("render artifacts: nil config")
	}

	steps := []struct {
		kind   Kind
		name   string
		render func() ([]byte, error)
	}{
		{KindCSS, cfg.Outputs.CSS, func() ([]byte, error) {
			return []byte(tokens.Stylesheet(themes.Light, themes.Dark, cfg.DarkSelector)), nil
		}},
		{KindTailwind, cfg.Outputs.Tailwind, func() ([]byte, error) {
			return TailwindJSON(themes.Light)
		}},
		{KindTokens, cfg.Outputs.Tokens, func() ([]byte, error) {
			return envelope(themes.Light)
		}},
		{KindDarkTokens, cfg.Outputs.DarkTokens, func() ([]byte, error) {
			return envelope(themes.Dark)
		}},
		{KindSchema, cfg.Outputs.Schema, SchemaJSON},
	}

	artifacts := make([]Artifact, 0, len(steps))
	for _, step := range steps {
		if step.name == "" {
			continue
		}
		content, err := step.render()
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", step.kind, err)
		}
		artifacts = append(artifacts, Artifact{
			Kind:    step.kind,
			Path:    cfg.OutputPath(step.name),
			Content: content,
		})
	}
	return artifacts, nil
}

// TailwindJSON renders the Tailwind theme of t as indented JSON with a trailing newline.
func TailwindJSON(t tokens.ThemeTokens) ([]byte, error) {
	return marshalIndent(tokens.ToTailwindTheme(t))
}

// SchemaJSON renders the envelope JSON Schema with a trailing newline.
func SchemaJSON() ([]byte, error) {
	return marshalIndent(tokens.JSONSchema())
}

func envelope(t tokens.ThemeTokens) ([]byte, error) {
	doc, err := tokens.Serialize(t)
	if err != nil {
		return nil, err
	}
	return []byte(doc + "\n"), nil
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
