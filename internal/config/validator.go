package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	selectorPattern = regexp.MustCompile(`^[^{};]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_selector", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return strings.TrimSpace(value) == value && selectorPattern.MatchString(value)
		})

		// Artifact names stay inside the output directory.
		_ = v.RegisterValidation("artifact_name", func(fl validator.FieldLevel) bool {
			return filepath.IsLocal(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return paletteerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]string, 5)
	for _, artifact := range []struct {
		field string
		name  string
	}{
		{"outputs.css", cfg.Outputs.CSS},
		{"outputs.tailwind", cfg.Outputs.Tailwind},
		{"outputs.tokens", cfg.Outputs.Tokens},
		{"outputs.dark_tokens", cfg.Outputs.DarkTokens},
		{"outputs.schema", cfg.Outputs.Schema},
	} {
		if artifact.name == "" {
			continue
		}
		key := filepath.Clean(artifact.name)
		if other, exists := seen[key]; exists {
			return paletteerrors.NewValidationError(artifact.field, fmt.Sprintf("duplicate output %q (also used by %s)", artifact.name, other), nil)
		}
		seen[key] = artifact.field
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return paletteerrors.NewValidationError(field, msg, err)
	}

	return paletteerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName strips the root type from the namespace, leaving the yaml path.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
