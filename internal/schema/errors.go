package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Schema declaration errors reported by [Describe].
var (
	ErrSchemaNotStruct      = errors.New("schema type must be a struct")
	ErrUnexportedField      = errors.New("conf tag on unexported field")
	ErrUnsupportedFieldType = errors.New("unsupported schema field type")
)

// FailureKind classifies one field-level validation failure.
type FailureKind string

const (
	// KindMissing marks a required field absent from every source.
	KindMissing FailureKind = "missing"
	// KindType marks a value that cannot coerce to the declared type.
	KindType FailureKind = "type"
	// KindConstraint marks a coerced value rejected by a validator.
	KindConstraint FailureKind = "constraint"
	// KindSection marks a scalar found where a nested group is declared.
	KindSection FailureKind = "section"
)

// FieldError records one field-level validation failure. Value is already
// redacted when the field is sensitive.
type FieldError struct {
	Path     string
	Kind     FailureKind
	Expected string
	Value    string
	Reason   string
}

func (e FieldError) Error() string {
	switch e.Kind {
	case KindMissing:
		return fmt.Sprintf("%s: missing required field", e.Path)
	case KindType:
		return fmt.Sprintf("%s: cannot coerce %q to %s", e.Path, e.Value, e.Expected)
	case KindSection:
		return fmt.Sprintf("%s: expected a nested section, got %q", e.Path, e.Value)
	default:
		if e.Value == "" {
			return fmt.Sprintf("%s: %s", e.Path, e.Reason)
		}
		return fmt.Sprintf("%s: %s (got %q)", e.Path, e.Reason, e.Value)
	}
}

// ValidationError aggregates every field-level failure found during one
// validation pass, so a single report shows all problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "configuration validation failed with %d error(s):", len(e.Fields))
	for _, f := range e.Fields {
		b.WriteString("\n\t- ")
		b.WriteString(f.Error())
	}
	return b.String()
}

// Is makes errors.Is match any *ValidationError target.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}
