package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// SerializerVersion is written into every envelope and is the only version Deserialize accepts.
const SerializerVersion = "1.0.0"

// Document is the persisted envelope around a token set.
type Document struct {
	Version string      `json:"version"`
	Tokens  ThemeTokens `json:"tokens"`
}

// envelope defers decoding of the payload until the version is known.
type envelope struct {
	Version *string         `json:"version"`
	Tokens  json.RawMessage `json:"tokens"`
}

// Serialize renders t as an indented JSON envelope. Keys follow the model's
// declared order, so the output is byte-stable for equal inputs. Values that
// are not valid UTF-8 are rejected instead of being rewritten by the encoder.
func Serialize(t ThemeTokens) (string, error) {
	if violations := encodingViolations(t, nil); len(violations) > 0 {
		return "", paletteerrors.NewSchemaViolation(violations, nil)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Version: SerializerVersion, Tokens: t}); err != nil {
		return "", fmt.Errorf("encode token document: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Deserialize parses an envelope produced by Serialize. It fails with
// MalformedDocumentError for invalid JSON, UnsupportedVersionError when the
// envelope version differs from SerializerVersion, and SchemaViolationError
// when the payload is not a valid token set.
func Deserialize(data string) (ThemeTokens, error) {
	var env envelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return ThemeTokens{}, malformed(err)
	}

	if env.Version == nil {
		return ThemeTokens{}, paletteerrors.NewUnsupportedVersion("", SerializerVersion)
	}
	if *env.Version != SerializerVersion {
		return ThemeTokens{}, paletteerrors.NewUnsupportedVersion(*env.Version, SerializerVersion)
	}

	t, err := DecodeTokens(env.Tokens)
	if err != nil {
		return ThemeTokens{}, err
	}
	return Validate(t)
}

// DecodeTokens strictly decodes a bare token payload. Unknown keys and
// mistyped values are schema violations; it does not run Validate.
func DecodeTokens(payload []byte) (ThemeTokens, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ThemeTokens{}, paletteerrors.NewSchemaViolation(
			[]paletteerrors.Violation{{Path: "tokens", Rule: "required"}}, nil)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var t ThemeTokens
	if err := dec.Decode(&t); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return ThemeTokens{}, malformed(err)
		}
		return ThemeTokens{}, decodeViolation(err)
	}
	return t, nil
}

func malformed(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return paletteerrors.NewMalformedDocument(syntaxErr.Offset, err)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return paletteerrors.NewMalformedDocument(typeErr.Offset, err)
	}
	return paletteerrors.NewMalformedDocument(0, err)
}

func decodeViolation(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = "tokens"
		}
		return paletteerrors.NewSchemaViolation([]paletteerrors.Violation{{
			Path:  path,
			Rule:  "type",
			Value: typeErr.Value,
		}}, err)
	}

	// encoding/json reports unknown keys as `json: unknown field "name"`.
	msg := err.Error()
	if field, ok := strings.CutPrefix(msg, "json: unknown field "); ok {
		return paletteerrors.NewSchemaViolation([]paletteerrors.Violation{{
			Path: strings.Trim(field, `"`),
			Rule: "unknown",
		}}, err)
	}

	return paletteerrors.NewSchemaViolation([]paletteerrors.Violation{{Path: "tokens", Rule: msg}}, err)
}
