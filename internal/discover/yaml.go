package discover

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"immutagen/internal/classify"
	"immutagen/internal/diagnostic"
	"immutagen/internal/schema"
)

// SchemaFile represents the root of a YAML class schema file.
// This is the authoritative, human-reviewed class configuration.
type SchemaFile struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the default Go package for generated classes. A class may
	// override it with its own package field.
	Package string `yaml:"package,omitempty"`

	// Table extends the default type classification table.
	Table TableSection `yaml:"table,omitempty"`

	// Classes is the list of immutable classes to synthesize.
	Classes []ClassDef `yaml:"classes"`
}

// TableSection lists named types to register in the classification table,
// on top of the built-in defaults.
type TableSection struct {
	Enums           []string `yaml:"enums,omitempty"`
	KnownImmutables []string `yaml:"known_immutables,omitempty"`
	Cloneables      []string `yaml:"cloneables,omitempty"`
	DateLikes       []string `yaml:"date_likes,omitempty"`
}

// ClassDef defines one immutable class in a schema file.
type ClassDef struct {
	// Name is the class name (e.g., "Customer").
	Name string `yaml:"name"`

	// Package overrides the file-level default package.
	Package string `yaml:"package,omitempty"`

	// Extensible marks the class as open for extension. Extensible classes
	// are rejected during validation.
	Extensible bool `yaml:"extensible,omitempty"`

	// Properties is the ordered property list.
	Properties PropertyList `yaml:"properties"`

	// Methods lists method names the class declares by hand. Synthesis
	// yields to these and falls back to the Generated* names.
	Methods MethodList `yaml:"methods,omitempty"`
}

// PropertyDef represents one property definition (name and type).
// Can be a shorthand single-key map {name: type} or an explicit object
// {name: ..., type: ..., static: ..., accessor: ...}.
type PropertyDef struct {
	Name             string `yaml:"name"`
	Type             string `yaml:"type"`
	Static           bool   `yaml:"static"`
	ExplicitAccessor bool   `yaml:"accessor"`
}

// PropertyList unmarshals an ordered list of property definitions.
type PropertyList []PropertyDef

// UnmarshalYAML implements yaml.Unmarshaler for PropertyList.
// Accepts:
//   - Shorthand items: {first: string}
//   - Explicit items: {name: first, type: string, static: true}
func (p *PropertyList) UnmarshalYAML(unmarshal func(any) error) error {
	var list []any
	if err := unmarshal(&list); err != nil {
		return err
	}

	result := make([]PropertyDef, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return errors.New("expected map for property definition")
		}

		// Explicit object definition (has "name" key).
		if nameVal, hasName := m["name"]; hasName {
			name, ok := nameVal.(string)
			if !ok {
				return errors.New("invalid property name, expected string")
			}

			def := PropertyDef{Name: name}

			if typeVal, hasType := m["type"]; hasType {
				ts, ok := typeVal.(string)
				if !ok {
					return errors.New("invalid property type, expected string")
				}

				def.Type = ts
			}

			if v, ok := m["static"].(bool); ok {
				def.Static = v
			}

			if v, ok := m["accessor"].(bool); ok {
				def.ExplicitAccessor = v
			}

			result = append(result, def)

			continue
		}

		// Fallback to Key-Value shorthand: { "propName": "propType" }
		if len(m) != 1 {
			return errors.New("invalid property definition, expected {name: type} or {name: ..., type: ...}")
		}

		for k, val := range m {
			ts, ok := val.(string)
			if !ok {
				return fmt.Errorf("invalid property type for %s, expected string", k)
			}

			result = append(result, PropertyDef{Name: k, Type: ts})
		}
	}

	*p = result

	return nil
}

// MethodList is a string slice that can be unmarshaled from a single string
// or a list.
type MethodList []string

// UnmarshalYAML implements yaml.Unmarshaler for MethodList.
func (s *MethodList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a SchemaFile.
func Parse(data []byte) (*SchemaFile, error) {
	var sf SchemaFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&sf)

	return &sf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *SchemaFile) {
	if sf.Version == "" {
		sf.Version = "1"
	}
}

// TableConfig returns the classification table extension declared by the file.
func (f *SchemaFile) TableConfig() classify.TableConfig {
	return classify.TableConfig{
		Enums:           f.Table.Enums,
		KnownImmutables: f.Table.KnownImmutables,
		Cloneables:      f.Table.Cloneables,
		DateLikes:       f.Table.DateLikes,
	}
}

// ClassSpecs lowers the file's class definitions into class specifications.
// Unparseable property types are reported as diagnostics; the affected
// property keeps an invalid type reference so later validation sees it too.
func (f *SchemaFile) ClassSpecs() ([]*schema.ClassSpec, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	specs := make([]*schema.ClassSpec, 0, len(f.Classes))

	for _, def := range f.Classes {
		spec := &schema.ClassSpec{
			Name:       def.Name,
			Package:    def.Package,
			Extensible: def.Extensible,
		}
		if spec.Package == "" {
			spec.Package = f.Package
		}

		for _, pd := range def.Properties {
			ref, err := schema.ParseTypeRef(pd.Type)
			if err != nil {
				diags.AddError(diagnostic.CodeBadTypeSyntax, err.Error(), def.Name, pd.Name, pd.Type)
			}

			spec.Properties = append(spec.Properties, schema.PropertySpec{
				Name:             pd.Name,
				Type:             ref,
				Static:           pd.Static,
				ExplicitAccessor: pd.ExplicitAccessor,
			})
		}

		for _, m := range def.Methods {
			spec.Methods = append(spec.Methods, schema.MethodSig{Name: m})
		}

		specs = append(specs, spec)
	}

	return specs, diags
}
