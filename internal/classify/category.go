package classify

import "immutagen/internal/common"

// TypeCategory is the handling category assigned to a declared property type.
// It governs the copy policy and legality of the property.
type TypeCategory int

const (
	// CategoryDisallowed marks mutable reference types without an
	// immutability marker. Classification never errors; the validator turns
	// this category into a fatal diagnostic.
	CategoryDisallowed TypeCategory = iota
	// CategoryPrimitive covers predeclared value types.
	CategoryPrimitive
	// CategoryEnum covers named types registered as enums.
	CategoryEnum
	// CategoryKnownImmutable covers types treated as immutable by convention
	// (arbitrary-precision numerics). Host-runtime mutability bugs in these
	// types are out of scope.
	CategoryKnownImmutable
	// CategoryCloneableArray covers fixed-length arrays; assignment copies.
	CategoryCloneableArray
	// CategoryCloneableObject covers named types with a Clone capability.
	CategoryCloneableObject
	// CategoryDateLike is a distinguished sub-case of CategoryCloneableObject
	// with identical copy semantics, kept separate for documentation clarity.
	CategoryDateLike
	// CategoryCollection covers slices; wrapped, not cloned.
	CategoryCollection
	// CategoryMap covers maps; wrapped, not cloned.
	CategoryMap
	// CategoryUserImmutable covers classes produced by this same synthesizer
	// or otherwise declared structurally immutable.
	CategoryUserImmutable
)

// String returns a human-readable category name.
func (c TypeCategory) String() string {
	switch c {
	case CategoryDisallowed:
		return "disallowed"
	case CategoryPrimitive:
		return "primitive"
	case CategoryEnum:
		return "enum"
	case CategoryKnownImmutable:
		return "known_immutable"
	case CategoryCloneableArray:
		return "cloneable_array"
	case CategoryCloneableObject:
		return "cloneable_object"
	case CategoryDateLike:
		return "date_like"
	case CategoryCollection:
		return "collection"
	case CategoryMap:
		return "map"
	case CategoryUserImmutable:
		return "user_immutable"
	default:
		return common.UnknownStr
	}
}

// Allowed reports whether the category may appear on a significant property.
func (c TypeCategory) Allowed() bool {
	return c != CategoryDisallowed
}
