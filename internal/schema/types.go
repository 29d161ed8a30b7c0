package schema

import "strings"

// PropertySpec describes one declared property of a class.
type PropertySpec struct {
	// Name is the property name as declared (lower-case by convention).
	Name string
	// Type is the declared type reference.
	Type TypeRef
	// Static marks class-level properties; these never participate in
	// significant state.
	Static bool
	// ExplicitAccessor marks properties for which the user already supplies
	// an accessor, bypassing the standard convention.
	ExplicitAccessor bool
}

// Significant reports whether the property participates in equality, hashing,
// printing, and the defensive-copy contracts.
func (p PropertySpec) Significant() bool {
	return !p.Static && !p.ExplicitAccessor
}

// MethodSig identifies a user-supplied method well enough for override and
// mutator detection.
type MethodSig struct {
	// Name is the method name.
	Name string
	// Args are the argument type renderings (informational).
	Args []string
}

// ClassSpec is the full input schema for one class. The synthesizer borrows
// it read-only and never mutates it.
type ClassSpec struct {
	// Name is the class (and generated Go type) name.
	Name string
	// Package is the Go package the artifact is generated into.
	Package string
	// Extensible declares an intentional subclassing hook. The validator
	// rejects such schemas: generated classes must be non-extensible.
	Extensible bool
	// Properties is the ordered property list.
	Properties []PropertySpec
	// Methods are user-supplied method signatures.
	Methods []MethodSig
}

// Significant returns the significant properties in declaration order.
func (c *ClassSpec) Significant() []PropertySpec {
	var out []PropertySpec
	for _, p := range c.Properties {
		if p.Significant() {
			out = append(out, p)
		}
	}

	return out
}

// HasMethod reports whether the user supplied a method with the given name.
func (c *ClassSpec) HasMethod(name string) bool {
	for _, m := range c.Methods {
		if m.Name == name {
			return true
		}
	}

	return false
}

// Property returns the property with the given name, if present.
func (c *ClassSpec) Property(name string) (PropertySpec, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return PropertySpec{}, false
}

// AccessorName returns the exported accessor name for a property
// (e.g. "firstName" -> "FirstName").
func AccessorName(prop string) string {
	if prop == "" {
		return ""
	}

	return strings.ToUpper(prop[:1]) + prop[1:]
}

// MutatorName returns the conventional setter name for a property
// (e.g. "age" -> "SetAge"). Generated classes must never have one.
func MutatorName(prop string) string {
	return "Set" + AccessorName(prop)
}
