package synth

import "immutagen/internal/schema"

// structuralMethods decides, per structural method, whether to generate the
// public method or the reserved fallback:
//
//   - user did not define the public method: generate it;
//   - user defined the public method but not the fallback: generate the
//     default body under the reserved fallback name, so user code can still
//     invoke the generated behavior explicitly;
//   - user defined both: generate nothing for that method (avoids a naming
//     collision with the reserved name).
//
// The choice is resolved once, at generation time; no dynamic dispatch is
// involved.
func structuralMethods(spec *schema.ClassSpec) []StructuralMethod {
	var out []StructuralMethod

	for _, kind := range []MethodKind{MethodEqual, MethodHash, MethodString} {
		userHasPublic := spec.HasMethod(kind.PublicName())
		userHasFallback := spec.HasMethod(kind.FallbackName())

		switch {
		case !userHasPublic:
			out = append(out, StructuralMethod{Kind: kind, Name: kind.PublicName()})
		case !userHasFallback:
			out = append(out, StructuralMethod{Kind: kind, Name: kind.FallbackName(), Fallback: true})
		}
	}

	return out
}
