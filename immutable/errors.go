package immutable

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMutation is returned by every mutating operation on a
// read-only view. Mutation of an immutable value is a logic error, so callers
// are expected to treat this as fatal rather than retry.
var ErrUnsupportedMutation = errors.New("immutable: unsupported mutation")

// ConstructionError reports a bad argument to a generated map-based
// constructor: an unknown property key, or a value of the wrong type.
type ConstructionError struct {
	// Class is the name of the class being constructed.
	Class string
	// Key is the offending property key.
	Key string
	// Reason is a short human-readable description.
	Reason string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("immutable: constructing %s: property %q: %s", e.Class, e.Key, e.Reason)
}

// NewConstructionError creates a ConstructionError.
func NewConstructionError(class, key, reason string) *ConstructionError {
	return &ConstructionError{Class: class, Key: key, Reason: reason}
}
