package classify

import "immutagen/internal/schema"

// Classify maps a declared type to its handling category. It is total and
// pure: every input yields exactly one category, and nothing here errors.
//
// Priority order for named types: enum, known-immutable, date-like,
// cloneable, user-immutable, disallowed.
func (t Table) Classify(ref schema.TypeRef) TypeCategory {
	switch ref.Kind {
	case schema.KindBasic:
		return CategoryPrimitive

	case schema.KindArray:
		return CategoryCloneableArray

	case schema.KindSlice:
		return CategoryCollection

	case schema.KindMap:
		return CategoryMap

	case schema.KindPointer:
		return t.classifyPointer(ref)

	case schema.KindNamed:
		return t.classifyNamed(ref.Name)

	default:
		return CategoryDisallowed
	}
}

func (t Table) classifyNamed(name string) TypeCategory {
	switch {
	case t.IsEnum(name):
		return CategoryEnum
	case t.IsKnownImmutable(name):
		return CategoryKnownImmutable
	case t.IsDateLike(name):
		return CategoryDateLike
	case t.IsCloneable(name):
		return CategoryCloneableObject
	case t.IsUserImmutable(name):
		return CategoryUserImmutable
	default:
		return CategoryDisallowed
	}
}

// classifyPointer handles pointer-shaped declarations. A pointer is a shared
// alias, so it is only legal when the pointee is copied on the way in and out
// (cloneable, date-like) or trusted immutable by convention: *big.Int is the
// usual spelling of the arbitrary-precision types. Everything else stays
// disallowed — the alias would let a caller mutate observable state by
// assigning through the pointer.
func (t Table) classifyPointer(ref schema.TypeRef) TypeCategory {
	if ref.Elem == nil || ref.Elem.Kind != schema.KindNamed {
		return CategoryDisallowed
	}

	switch cat := t.classifyNamed(ref.Elem.Name); cat {
	case CategoryKnownImmutable, CategoryDateLike, CategoryCloneableObject:
		return cat
	default:
		return CategoryDisallowed
	}
}
