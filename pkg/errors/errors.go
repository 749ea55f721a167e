package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// Sentinels for classifying token failures with errors.Is.
var (
	ErrSchemaViolation    = stdErrors.New("schema violation")
	ErrMalformedDocument  = stdErrors.New("malformed document")
	ErrUnsupportedVersion = stdErrors.New("unsupported version")
)

// Violation is a single broken token invariant.
type Violation struct {
	Path  string
	Rule  string
	Value string
}

func (v Violation) String() string {
	if v.Value == "" {
		return fmt.Sprintf("%s: %s", v.Path, v.Rule)
	}
	return fmt.Sprintf("%s: %s (got %q)", v.Path, v.Rule, v.Value)
}

// SchemaViolationError reports every path of a token set that failed validation.
type SchemaViolationError struct {
	Violations []Violation
	Err        error
}

// NewSchemaViolation constructs a SchemaViolationError.
func NewSchemaViolation(violations []Violation, err error) error {
	return &SchemaViolationError{Violations: violations, Err: err}
}

func (e *SchemaViolationError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Violations) == 0 {
		return "schema violation"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("schema violation: %s", strings.Join(parts, "; "))
}

// Paths returns the offending token paths in report order.
func (e *SchemaViolationError) Paths() []string {
	if e == nil {
		return nil
	}
	paths := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		paths = append(paths, v.Path)
	}
	return paths
}

// Is matches ErrSchemaViolation.
func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// Unwrap exposes the underlying error.
func (e *SchemaViolationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MalformedDocumentError indicates input that is not a valid JSON token document.
type MalformedDocumentError struct {
	Offset int64
	Err    error
}

// NewMalformedDocument constructs a MalformedDocumentError.
func NewMalformedDocument(offset int64, err error) error {
	return &MalformedDocumentError{Offset: offset, Err: err}
}

func (e *MalformedDocumentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Offset > 0 {
		return fmt.Sprintf("malformed document at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("malformed document: %v", e.Err)
}

// Is matches ErrMalformedDocument.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// Unwrap exposes the underlying error.
func (e *MalformedDocumentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnsupportedVersionError indicates an envelope written by an unknown serializer version.
type UnsupportedVersionError struct {
	Got  string
	Want string
}

// NewUnsupportedVersion constructs an UnsupportedVersionError.
func NewUnsupportedVersion(got, want string) error {
	return &UnsupportedVersionError{Got: got, Want: want}
}

func (e *UnsupportedVersionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported version %q (expected %q)", e.Got, e.Want)
}

// Is matches ErrUnsupportedVersion.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsInvalidInput reports whether err stems from bad user input rather than an internal failure.
func IsInvalidInput(err error) bool {
	if err == nil {
		return false
	}
	var parseErr *ParseError
	var validationErr *ValidationError
	return stdErrors.Is(err, ErrSchemaViolation) ||
		stdErrors.Is(err, ErrMalformedDocument) ||
		stdErrors.Is(err, ErrUnsupportedVersion) ||
		stdErrors.As(err, &parseErr) ||
		stdErrors.As(err, &validationErr)
}
