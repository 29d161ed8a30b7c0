// Package validate enforces class-level invariants before synthesis: the
// class must be non-extensible, significant properties may not have explicit
// mutators, and no significant property may classify as disallowed.
//
// All violations for a class are collected and reported together, not just
// the first, so a schema author can fix a batch of problems in one pass.
package validate

import (
	"fmt"

	"immutagen/internal/classify"
	"immutagen/internal/diagnostic"
	"immutagen/internal/schema"
)

// Class validates a ClassSpec against the classification table. Errors in the
// result abort synthesis of this class only; unrelated classes in the same
// batch proceed.
func Class(tbl classify.Table, spec *schema.ClassSpec) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if spec.Name == "" {
		diags.AddError(diagnostic.CodeBadTypeSyntax, "class name is empty", spec.Name, "", "")
		return diags
	}

	if spec.Extensible {
		diags.AddError(diagnostic.CodeExtensibleClass,
			"class declares a subclassing hook; generated classes must be final",
			spec.Name, "", "")
	}

	seen := make(map[string]bool, len(spec.Properties))

	for _, p := range spec.Properties {
		if seen[p.Name] {
			diags.AddError(diagnostic.CodeDuplicateProp,
				"property declared more than once", spec.Name, p.Name, p.Type.String())

			continue
		}

		seen[p.Name] = true

		if p.ExplicitAccessor {
			// Intentional escape hatch: permitted, but excluded from
			// significant state.
			diags.AddWarning(diagnostic.CodeExplicitAccessor,
				"property bypasses the standard convention; excluded from significant state",
				spec.Name, p.Name, p.Type.String())
		}

		if !p.Significant() {
			continue
		}

		if spec.HasMethod(schema.MutatorName(p.Name)) {
			diags.AddError(diagnostic.CodeExplicitMutator,
				fmt.Sprintf("significant property has explicit mutator %s", schema.MutatorName(p.Name)),
				spec.Name, p.Name, p.Type.String())
		}

		if p.Type.IsZero() {
			diags.AddError(diagnostic.CodeBadTypeSyntax,
				"property has no declared type", spec.Name, p.Name, "")

			continue
		}

		if cat := tbl.Classify(p.Type); !cat.Allowed() {
			diags.AddError(diagnostic.CodeDisallowedType,
				"mutable type without an immutability marker is not allowed on a significant property",
				spec.Name, p.Name, p.Type.String())
		}
	}

	return diags
}
