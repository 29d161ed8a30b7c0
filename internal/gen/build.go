package gen

import (
	"fmt"
	"strings"

	"immutagen/internal/classify"
	"immutagen/internal/schema"
	"immutagen/internal/synth"
)

// templateData is the fully rendered input to the class template.
type templateData struct {
	Package      string
	ClassName    string
	StdImports   []string
	ModImports   []string
	Fields       []fieldData
	CtorParams   string
	CtorStmts    []string
	MapCases     []mapCaseData
	Accessors    []accessorData
	EqualMethod  *methodData
	HashMethod   *methodData
	StringMethod *stringMethodData
}

type fieldData struct {
	Name string
	Type string
}

type mapCaseData struct {
	Key        string
	AssertType string
	Stmts      []string
}

type accessorData struct {
	Name       string
	Prop       string
	ReturnType string
	Stmts      []string
	DocSuffix  string
}

type methodData struct {
	Name  string
	Stmts []string
}

type stringMethodData struct {
	Name   string
	Format string
	Args   []string
}

// buildTemplateData lowers a ClassArtifact into template input: storage
// fields, constructor statements, map-constructor cases, accessors, and
// structural method bodies, each applying the property's copy policy.
func (g *Generator) buildTemplateData(a *synth.ClassArtifact) *templateData {
	data := &templateData{
		Package:   g.packageName(a),
		ClassName: a.Name,
	}

	var params []string

	for _, p := range a.Properties {
		data.Fields = append(data.Fields, fieldData{Name: p.Field, Type: fieldType(p)})
		params = append(params, p.Field+" "+declaredType(p))
		data.CtorStmts = append(data.CtorStmts, constructStmts(p, p.Field)...)

		data.MapCases = append(data.MapCases, mapCaseData{
			Key:        p.Spec.Name,
			AssertType: declaredType(p),
			Stmts:      constructStmts(p, "v"),
		})

		data.Accessors = append(data.Accessors, accessorData{
			Name:       p.Accessor,
			Prop:       p.Spec.Name,
			ReturnType: accessorType(p),
			Stmts:      accessStmts(p),
			DocSuffix:  accessorDocSuffix(p),
		})
	}

	data.CtorParams = strings.Join(params, ", ")

	for _, m := range a.Methods {
		switch m.Kind {
		case synth.MethodEqual:
			data.EqualMethod = &methodData{Name: m.Name, Stmts: equalBody(a)}
		case synth.MethodHash:
			data.HashMethod = &methodData{Name: m.Name, Stmts: hashBody(a)}
		case synth.MethodString:
			data.StringMethod = stringMethod(a, m.Name)
		}
	}

	data.StdImports, data.ModImports = importsFor(g.fragments(data), g.config.ExtraImports)

	return data
}

// fragments collects every rendered code fragment for import scanning.
func (g *Generator) fragments(data *templateData) []string {
	frags := []string{data.CtorParams}

	for _, f := range data.Fields {
		frags = append(frags, f.Type)
	}

	frags = append(frags, data.CtorStmts...)

	for _, c := range data.MapCases {
		frags = append(frags, c.AssertType)
		frags = append(frags, c.Stmts...)
	}

	// The map constructor itself uses fmt (%T diagnostics) and the runtime
	// error type whenever any case exists.
	if len(data.MapCases) > 0 {
		frags = append(frags, "fmt.Sprintf", "immutable.NewConstructionError")
	}

	// The default branch of the map constructor always needs the runtime.
	frags = append(frags, "immutable.NewConstructionError")

	for _, acc := range data.Accessors {
		frags = append(frags, acc.ReturnType)
		frags = append(frags, acc.Stmts...)
	}

	if data.EqualMethod != nil {
		frags = append(frags, data.EqualMethod.Stmts...)
	}

	if data.HashMethod != nil {
		frags = append(frags, "immutable.HashSeed")
		frags = append(frags, data.HashMethod.Stmts...)
	}

	if data.StringMethod != nil {
		frags = append(frags, "fmt.Sprintf")
	}

	return frags
}

// constructStmts emits the copy-in statements assigning src into the storage
// field, per the property's onConstruct action.
func constructStmts(p synth.Property, src string) []string {
	field := "c." + p.Field
	ptr := isPointer(p)

	switch p.Category {
	case classify.CategoryCollection:
		return []string{fmt.Sprintf("%s = immutable.WrapList(%s)", field, src)}

	case classify.CategoryMap:
		return []string{fmt.Sprintf("%s = immutable.WrapMap(%s)", field, src)}

	case classify.CategoryCloneableObject:
		if ptr {
			return []string{
				fmt.Sprintf("if %s != nil {", src),
				fmt.Sprintf("%s = %s.Clone()", field, src),
				"}",
			}
		}

		return []string{fmt.Sprintf("%s = %s.Clone()", field, src)}

	case classify.CategoryDateLike:
		if ptr {
			return []string{
				fmt.Sprintf("if %s != nil {", src),
				fmt.Sprintf("cp := *%s", src),
				fmt.Sprintf("%s = &cp", field),
				"}",
			}
		}

		// Value semantics: assignment is the clone.
		return []string{fmt.Sprintf("%s = %s", field, src)}

	default:
		// None, and CloneableArray where array assignment copies.
		return []string{fmt.Sprintf("%s = %s", field, src)}
	}
}

// accessStmts emits the copy-out statements for an accessor, per the
// property's onAccess action.
func accessStmts(p synth.Property) []string {
	field := "c." + p.Field
	ptr := isPointer(p)

	switch p.Category {
	case classify.CategoryCloneableObject:
		if ptr {
			return []string{
				fmt.Sprintf("if %s == nil {", field),
				"return nil",
				"}",
				fmt.Sprintf("return %s.Clone()", field),
			}
		}

		return []string{fmt.Sprintf("return %s.Clone()", field)}

	case classify.CategoryDateLike:
		if ptr {
			return []string{
				fmt.Sprintf("if %s == nil {", field),
				"return nil",
				"}",
				fmt.Sprintf("cp := *%s", field),
				"return &cp",
			}
		}

		return []string{fmt.Sprintf("return %s", field)}

	default:
		// Views enforce read-only access for collections and maps; everything
		// else is immutable by category.
		return []string{fmt.Sprintf("return %s", field)}
	}
}

// accessorType returns the accessor's return type: the stored view for
// wrapped categories, the declared type otherwise.
func accessorType(p synth.Property) string {
	return fieldType(p)
}

func accessorDocSuffix(p synth.Property) string {
	switch p.Category {
	case classify.CategoryCollection, classify.CategoryMap:
		return " as a read-only view"
	case classify.CategoryCloneableObject:
		return " as a defensive copy"
	default:
		return ""
	}
}

// equalBody emits the pairwise comparison statements for structural equality.
func equalBody(a *synth.ClassArtifact) []string {
	var stmts []string

	for _, p := range a.Properties {
		cf, of := "c."+p.Field, "o."+p.Field
		ptr := isPointer(p)

		if ptr {
			stmts = append(stmts,
				fmt.Sprintf("if (%s == nil) != (%s == nil) {", cf, of),
				"return false",
				"}",
			)
		}

		switch p.Category {
		case classify.CategoryCollection:
			stmts = append(stmts,
				fmt.Sprintf("if !immutable.ListEqual(%s, %s) {", cf, of), "return false", "}")

		case classify.CategoryMap:
			stmts = append(stmts,
				fmt.Sprintf("if !immutable.MapEqual(%s, %s) {", cf, of), "return false", "}")

		case classify.CategoryDateLike:
			if ptr {
				stmts = append(stmts,
					fmt.Sprintf("if %s != nil && !%s.Equal(*%s) {", cf, cf, of), "return false", "}")
			} else {
				stmts = append(stmts,
					fmt.Sprintf("if !%s.Equal(%s) {", cf, of), "return false", "}")
			}

		case classify.CategoryKnownImmutable:
			// Arbitrary-precision numerics compare via Cmp.
			if ptr {
				stmts = append(stmts,
					fmt.Sprintf("if %s != nil && %s.Cmp(%s) != 0 {", cf, cf, of), "return false", "}")
			} else {
				stmts = append(stmts,
					fmt.Sprintf("if %s.Cmp(&%s) != 0 {", cf, of), "return false", "}")
			}

		case classify.CategoryCloneableObject, classify.CategoryUserImmutable:
			if ptr {
				stmts = append(stmts,
					fmt.Sprintf("if %s != nil && !%s.Equal(%s) {", cf, cf, of), "return false", "}")
			} else {
				stmts = append(stmts,
					fmt.Sprintf("if !%s.Equal(%s) {", cf, of), "return false", "}")
			}

		default:
			// Primitives, enums, arrays: comparable.
			if ptr {
				stmts = append(stmts,
					fmt.Sprintf("if %s != nil && *%s != *%s {", cf, cf, of), "return false", "}")
			} else {
				stmts = append(stmts,
					fmt.Sprintf("if %s != %s {", cf, of), "return false", "}")
			}
		}
	}

	stmts = append(stmts, "return true")

	return stmts
}

// hashBody emits the order-sensitive hash fold. Absent (nil) values
// contribute the fixed NilHash sentinel instead of failing.
func hashBody(a *synth.ClassArtifact) []string {
	var stmts []string

	for _, p := range a.Properties {
		expr, guarded := hashExpr(p)
		if guarded {
			stmts = append(stmts,
				fmt.Sprintf("if c.%s != nil {", p.Field),
				fmt.Sprintf("h = immutable.HashCombine(h, %s)", expr),
				"} else {",
				"h = immutable.HashCombine(h, immutable.NilHash)",
				"}",
			)
		} else {
			stmts = append(stmts, fmt.Sprintf("h = immutable.HashCombine(h, %s)", expr))
		}
	}

	stmts = append(stmts, "return h")

	return stmts
}

// hashExpr returns the hash expression for one property and whether it must
// be nil-guarded.
func hashExpr(p synth.Property) (string, bool) {
	field := "c." + p.Field
	ptr := isPointer(p)

	switch p.Category {
	case classify.CategoryPrimitive:
		return primitiveHashExpr(p.Spec.Type.Name, field), false

	case classify.CategoryCollection, classify.CategoryMap:
		return fmt.Sprintf("immutable.HashString(%s.String())", field), false

	case classify.CategoryDateLike:
		return fmt.Sprintf("immutable.HashInt64(%s.UnixNano())", field), ptr

	case classify.CategoryKnownImmutable:
		return fmt.Sprintf("immutable.HashString(%s.String())", field), ptr

	default:
		// Enums, arrays, cloneables, user immutables: deterministic print.
		return fmt.Sprintf("immutable.HashString(fmt.Sprint(%s))", field), ptr
	}
}

// primitiveHashExpr picks the hash helper matching a predeclared type.
func primitiveHashExpr(name, field string) string {
	switch name {
	case "string":
		return fmt.Sprintf("immutable.HashString(%s)", field)
	case "bool":
		return fmt.Sprintf("immutable.HashBool(%s)", field)
	case "int", "int8", "int16", "int32", "int64", "rune":
		return fmt.Sprintf("immutable.HashInt64(int64(%s))", field)
	case "uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "byte":
		return fmt.Sprintf("immutable.HashUint64(uint64(%s))", field)
	case "float32", "float64":
		return fmt.Sprintf("immutable.HashFloat64(float64(%s))", field)
	default:
		// complex and any future predeclared types.
		return fmt.Sprintf("immutable.HashString(fmt.Sprint(%s))", field)
	}
}

// stringMethod builds the deterministic ClassName(p1=v1, ...) rendering.
func stringMethod(a *synth.ClassArtifact, name string) *stringMethodData {
	var parts []string

	var args []string

	for _, p := range a.Properties {
		parts = append(parts, p.Spec.Name+"=%v")

		arg := "c." + p.Field

		// Value-typed known immutables (big.Int and friends) declare String on
		// the pointer receiver, so %v on the value would dump struct internals.
		if p.Category == classify.CategoryKnownImmutable && !isPointer(p) {
			arg += ".String()"
		}

		args = append(args, arg)
	}

	return &stringMethodData{
		Name:   name,
		Format: a.Name + "(" + strings.Join(parts, ", ") + ")",
		Args:   args,
	}
}

func isPointer(p synth.Property) bool {
	return p.Spec.Type.Kind == schema.KindPointer
}
