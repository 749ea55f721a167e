package tokens

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report paths using the serialized key names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("oklch", func(fl validator.FieldLevel) bool {
			return IsOKLCH(fl.Field().String())
		})

		_ = v.RegisterValidation("spacing4", func(fl validator.FieldLevel) bool {
			return IsSpacingMultiple(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every invariant of a token set: all roles carry eleven
// oklch shades, every spacing step is a multiple of 4px, and no fixed key is
// empty. It returns t unchanged on success, or a SchemaViolationError that
// lists every offending path. Values must also be valid UTF-8.
func Validate(t ThemeTokens) (ThemeTokens, error) {
	err := validatorInstance().Struct(t)

	var violations []paletteerrors.Violation
	if err != nil {
		violations = fieldViolations(err)
	}
	violations = append(violations, encodingViolations(t, violations)...)

	if len(violations) > 0 {
		return ThemeTokens{}, paletteerrors.NewSchemaViolation(violations, err)
	}
	return t, nil
}

func fieldViolations(err error) []paletteerrors.Violation {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []paletteerrors.Violation{{Path: "tokens", Rule: err.Error()}}
	}

	violations := make([]paletteerrors.Violation, 0, len(ves))
	for _, fe := range ves {
		violations = append(violations, paletteerrors.Violation{
			Path:  tokenPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Value: fmt.Sprint(fe.Value()),
		})
	}
	return violations
}

// encodingViolations flags values that are not valid UTF-8; JSON encoding
// would replace their bytes and the document would no longer round-trip.
// Paths already reported are skipped.
func encodingViolations(t ThemeTokens, reported []paletteerrors.Violation) []paletteerrors.Violation {
	seen := make(map[string]bool, len(reported))
	for _, v := range reported {
		seen[v.Path] = true
	}

	var violations []paletteerrors.Violation
	for _, leaf := range Leaves(t) {
		if seen[leaf.Path] || utf8.ValidString(leaf.Value) {
			continue
		}
		violations = append(violations, paletteerrors.Violation{
			Path:  leaf.Path,
			Rule:  "utf8",
			Value: strings.ToValidUTF8(leaf.Value, "\ufffd"),
		})
	}
	return violations
}

// tokenPath drops the root type name from a validator namespace.
func tokenPath(namespace string) string {
	if idx := strings.IndexByte(namespace, '.'); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
