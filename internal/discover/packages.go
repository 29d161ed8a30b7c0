package discover

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"

	"immutagen/internal/schema"
)

// Directive marks a struct type for immutable class synthesis. It appears on
// its own line in the type's doc comment:
//
//	//immutagen:immutable
//	type Customer struct { ... }
const Directive = "immutagen:immutable"

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Scanner loads Go packages and extracts class specifications from structs
// carrying the directive.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanPackages loads the given package patterns and returns one class
// specification per directive-annotated struct, in source order.
// Patterns are standard Go package patterns (e.g., "./model", "immutagen/examples/model").
func (s *Scanner) ScanPackages(patterns ...string) ([]*schema.ClassSpec, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var specs []*schema.ClassSpec

	for _, pkg := range pkgs {
		found, err := s.scanPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package %s: %w", pkg.PkgPath, err)
		}

		specs = append(specs, found...)
	}

	return specs, nil
}

// scanPackage walks the package syntax and builds a spec for every
// directive-annotated struct type.
func (s *Scanner) scanPackage(pkg *packages.Package) ([]*schema.ClassSpec, error) {
	var specs []*schema.ClassSpec

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, declSpec := range genDecl.Specs {
				ts, ok := declSpec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}

				if !hasDirective(doc) {
					continue
				}

				spec, err := s.buildSpec(pkg, ts)
				if err != nil {
					return nil, err
				}

				specs = append(specs, spec)
			}
		}
	}

	return specs, nil
}

// buildSpec lowers one annotated struct type into a class specification.
func (s *Scanner) buildSpec(pkg *packages.Package, ts *ast.TypeSpec) (*schema.ClassSpec, error) {
	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("no type information for %s", ts.Name.Name)
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s: directive requires a defined type", ts.Name.Name)
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s: directive requires a struct type", ts.Name.Name)
	}

	spec := &schema.ClassSpec{
		Name:    ts.Name.Name,
		Package: pkg.Name,
	}

	for i := 0; i < named.NumMethods(); i++ {
		spec.Methods = append(spec.Methods, schema.MethodSig{Name: named.Method(i).Name()})
	}

	qualify := qualifierFor(pkg)

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Embedded() {
			continue
		}

		propName := lowerFirst(field.Name())

		typeStr := types.TypeString(field.Type(), qualify)

		ref, err := schema.ParseTypeRef(typeStr)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: unsupported type %s: %w",
				ts.Name.Name, field.Name(), typeStr, err)
		}

		spec.Properties = append(spec.Properties, schema.PropertySpec{
			Name:             propName,
			Type:             ref,
			ExplicitAccessor: spec.HasMethod(schema.AccessorName(propName)),
		})
	}

	return spec, nil
}

// qualifierFor renders types relative to the scanned package: local names
// stay bare, foreign names get their package name prefix (e.g., time.Time).
func qualifierFor(pkg *packages.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg.Types {
			return ""
		}

		return other.Name()
	}
}

// hasDirective reports whether the comment group contains the directive on
// its own line. Directive comments are kept in the group's List even though
// they are excluded from its rendered text.
func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if text == Directive {
			return true
		}
	}

	return false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}
