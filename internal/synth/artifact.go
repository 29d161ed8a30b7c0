package synth

import (
	"immutagen/internal/classify"
	"immutagen/internal/common"
	"immutagen/internal/policy"
	"immutagen/internal/schema"
)

// Property is the synthesized view of one significant property: its spec,
// its classification, and the copy policy both constructors and the accessor
// apply.
type Property struct {
	// Spec is the declared property.
	Spec schema.PropertySpec
	// Category assigned by classification.
	Category classify.TypeCategory
	// Policy is the defensive-copy policy for the category.
	Policy policy.CopyPolicy
	// Field is the unexported storage field name.
	Field string
	// Accessor is the exported accessor name.
	Accessor string
}

// MethodKind identifies one of the three structural methods.
type MethodKind int

const (
	MethodEqual MethodKind = iota
	MethodHash
	MethodString
)

// String returns a human-readable kind name.
func (k MethodKind) String() string {
	switch k {
	case MethodEqual:
		return "equal"
	case MethodHash:
		return "hash"
	case MethodString:
		return "string"
	default:
		return common.UnknownStr
	}
}

// PublicName returns the public method name for the kind.
func (k MethodKind) PublicName() string {
	switch k {
	case MethodEqual:
		return "Equal"
	case MethodHash:
		return "Hash"
	case MethodString:
		return "String"
	default:
		return common.UnknownStr
	}
}

// FallbackName returns the reserved name under which the generated default is
// exposed when the user supplies the public method themselves.
func (k MethodKind) FallbackName() string {
	return "Generated" + k.PublicName()
}

// StructuralMethod records one structural method to emit and the name it is
// emitted under.
type StructuralMethod struct {
	// Kind of the method.
	Kind MethodKind
	// Name the method is generated under: the public name, or the reserved
	// fallback name when the user overrode the public one.
	Name string
	// Fallback is true when Name is the reserved fallback name.
	Fallback bool
}

// ClassArtifact is the finalized, generation-time description of one
// immutable class, consumed by the code emitter.
type ClassArtifact struct {
	// Name of the class.
	Name string
	// Package the artifact is generated into.
	Package string
	// Properties are the significant properties in declaration order.
	Properties []Property
	// Methods are the structural methods to generate.
	Methods []StructuralMethod
}

// Method returns the structural method of the given kind, if one is emitted.
func (a *ClassArtifact) Method(kind MethodKind) (StructuralMethod, bool) {
	for _, m := range a.Methods {
		if m.Kind == kind {
			return m, true
		}
	}

	return StructuralMethod{}, false
}
