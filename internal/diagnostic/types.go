package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"immutagen/internal/common"
)

// Well-known reason codes. Callers surface these to users verbatim, so they
// form part of the tool's diagnostic contract.
const (
	CodeDisallowedType   = "disallowed_type"
	CodeExtensibleClass  = "extensible_class"
	CodeExplicitMutator  = "explicit_mutator"
	CodeExplicitAccessor = "explicit_accessor"
	CodeDuplicateProp    = "duplicate_property"
	CodeBadTypeSyntax    = "bad_type_syntax"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic represents a single finding about one class or property.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is the reason code identifying this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Class names the class this relates to.
	Class string
	// Property names the property this relates to (if any).
	Property string
	// DeclaredType is the property's declared type rendering (if any).
	DeclaredType string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Class != "" {
		prefix = append(prefix, "["+d.Class+"]")
	}

	if d.Property != "" {
		p := d.Property
		if d.DeclaredType != "" {
			p += " " + d.DeclaredType
		}

		prefix = append(prefix, p)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics aggregates findings for one class (or one batch after Merge).
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, class, property, declaredType string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:     SeverityError,
		Code:         code,
		Message:      message,
		Class:        class,
		Property:     property,
		DeclaredType: declaredType,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, class, property, declaredType string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:     SeverityWarning,
		Code:         code,
		Message:      message,
		Class:        class,
		Property:     property,
		DeclaredType: declaredType,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, class, property, declaredType string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:     SeverityInfo,
		Code:         code,
		Message:      message,
		Class:        class,
		Property:     property,
		DeclaredType: declaredType,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
