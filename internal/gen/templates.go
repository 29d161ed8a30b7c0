package gen

import "text/template"

// classTemplate renders one immutable class file. Output goes through
// go/format, so statement fragments carry no indentation of their own.
var classTemplate = template.Must(template.New("class").Parse(`// Code generated by immutagen. DO NOT EDIT.

package {{.Package}}
{{if or .StdImports .ModImports}}
import (
{{- range .StdImports}}
"{{.}}"
{{- end}}
{{- if and .StdImports .ModImports}}
{{end}}
{{- range .ModImports}}
"{{.}}"
{{- end}}
)
{{end}}
// {{.ClassName}} is an immutable value class synthesized from its schema.
// Construction defensively copies cloneable values and wraps collections and
// maps in read-only views. The wrap is shallow: mutable elements inside a
// wrapped collection remain mutable through the view.
type {{.ClassName}} struct {
{{- range .Fields}}
{{.Name}} {{.Type}}
{{- end}}
}

// New{{.ClassName}} constructs a {{.ClassName}} from values in property
// declaration order.
func New{{.ClassName}}({{.CtorParams}}) {{.ClassName}} {
var c {{.ClassName}}
{{- range .CtorStmts}}
{{.}}
{{- end}}
return c
}

// New{{.ClassName}}FromMap constructs a {{.ClassName}} from named property
// values. Unknown keys and wrongly-typed values fail construction; missing
// keys are left at the type's zero value.
func New{{.ClassName}}FromMap(props map[string]any) ({{.ClassName}}, error) {
var c {{.ClassName}}
for key{{if .MapCases}}, val{{end}} := range props {
switch key {
{{- range .MapCases}}
case "{{.Key}}":
v, ok := val.({{.AssertType}})
if !ok {
return {{$.ClassName}}{}, immutable.NewConstructionError("{{$.ClassName}}", key, fmt.Sprintf("expected {{.AssertType}}, got %T", val))
}
{{- range .Stmts}}
{{.}}
{{- end}}
{{- end}}
default:
return {{.ClassName}}{}, immutable.NewConstructionError("{{.ClassName}}", key, "unknown property")
}
}
return c, nil
}
{{range .Accessors}}
// {{.Name}} returns the {{.Prop}} property{{.DocSuffix}}.
func (c {{$.ClassName}}) {{.Name}}() {{.ReturnType}} {
{{- range .Stmts}}
{{.}}
{{- end}}
}
{{end}}
{{- if .EqualMethod}}
// {{.EqualMethod.Name}} reports structural equality: same class, then
// pairwise equality of every significant property value.
func (c {{.ClassName}}) {{.EqualMethod.Name}}(o {{.ClassName}}) bool {
{{- range .EqualMethod.Stmts}}
{{.}}
{{- end}}
}
{{end}}
{{- if .HashMethod}}
// {{.HashMethod.Name}} returns an order-sensitive combination of the
// significant property hashes, stable across invocations for equal instances.
func (c {{.ClassName}}) {{.HashMethod.Name}}() uint64 {
h := immutable.HashSeed()
{{- range .HashMethod.Stmts}}
{{.}}
{{- end}}
}
{{end}}
{{- if .StringMethod}}
// {{.StringMethod.Name}} renders the instance as {{.ClassName}}(prop=value, ...).
func (c {{.ClassName}}) {{.StringMethod.Name}}() string {
return fmt.Sprintf("{{.StringMethod.Format}}"{{range .StringMethod.Args}}, {{.}}{{end}})
}
{{end}}`))
