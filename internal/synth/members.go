package synth

import (
	"fmt"
	"strings"

	"immutagen/internal/classify"
	"immutagen/internal/policy"
	"immutagen/internal/schema"
)

// members builds the synthesized property list: one entry per significant
// property, carrying the category and copy policy the emitter applies to the
// storage field, both constructors, and the accessor.
//
// Validation runs before synthesis, so a disallowed category here means the
// caller skipped it; escalate naming the property and its declared type.
func members(tbl classify.Table, spec *schema.ClassSpec) ([]Property, error) {
	var props []Property

	for _, p := range spec.Significant() {
		cat := tbl.Classify(p.Type)

		pol, err := policy.For(cat)
		if err != nil {
			return nil, fmt.Errorf("class %s: property %s (%s): %w",
				spec.Name, p.Name, p.Type.String(), err)
		}

		props = append(props, Property{
			Spec:     p,
			Category: cat,
			Policy:   pol,
			Field:    fieldName(p.Name),
			Accessor: schema.AccessorName(p.Name),
		})
	}

	return props, nil
}

// fieldName derives the unexported storage field name for a property.
func fieldName(prop string) string {
	if prop == "" {
		return ""
	}

	return strings.ToLower(prop[:1]) + prop[1:]
}
