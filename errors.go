package jsontime

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("jsontime: configuration error")
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("jsontime: parse error")
)

// ConfigurationError reports an unsupported shape, feature, pattern or type
// combination. It is raised when a codec is bound, never per value.
type ConfigurationError struct {
	Kind     Kind
	Field    string
	Shape    Shape
	Document string
	Reason   string
	Err      error
}

func (e *ConfigurationError) Error() string {
	var sb strings.Builder
	sb.WriteString("jsontime: configuration")
	if e.Kind != KindInvalid {
		fmt.Fprintf(&sb, " %s", e.Kind)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, " field %q", e.Field)
	}
	if e.Shape != ShapeDefault {
		fmt.Fprintf(&sb, " shape=%s", e.Shape)
	}
	if e.Document != "" {
		fmt.Fprintf(&sb, " document=%s", e.Document)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ParseError reports input that matched neither the configured pattern nor
// the canonical form (or a malformed number/array). The decode target is
// never partially populated.
type ParseError struct {
	Field    string
	Kind     Kind
	Raw      string
	Patterns []string // attempted patterns in order; "<canonical>" for the canonical form
	Err      error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "jsontime: cannot decode %s", e.Kind)
	if e.Field != "" {
		fmt.Fprintf(&sb, " field %q", e.Field)
	}
	fmt.Fprintf(&sb, " from %s", e.Raw)
	if len(e.Patterns) > 0 {
		fmt.Fprintf(&sb, " (tried %s)", strings.Join(e.Patterns, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

const canonicalName = "<canonical>"
