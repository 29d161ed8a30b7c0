package gen

import (
	"sort"
	"strings"

	"immutagen/internal/classify"
	"immutagen/internal/common"
	"immutagen/internal/schema"
	"immutagen/internal/synth"
)

// runtimePkg is the import path of the runtime support library generated
// code depends on.
const runtimePkg = "immutagen/immutable"

// knownImportPaths maps package aliases appearing in schema type names to
// import paths. Extendable via Config.ExtraImports.
var knownImportPaths = map[string]string{
	"time": "time",
	"big":  "math/big",
}

// goType renders a TypeRef as Go source. TypeRef's canonical string form is
// already valid Go for every supported shape.
func goType(t schema.TypeRef) string {
	return t.String()
}

// fieldType returns the storage field type for a synthesized property.
// Collections and maps store the read-only view; the wrap happens once, at
// construction.
func fieldType(p synth.Property) string {
	switch p.Category {
	case classify.CategoryCollection:
		return "immutable.List[" + goType(*p.Spec.Type.Elem) + "]"
	case classify.CategoryMap:
		return "immutable.Map[" + goType(*p.Spec.Type.Key) + ", " + goType(*p.Spec.Type.Elem) + "]"
	default:
		return goType(p.Spec.Type)
	}
}

// declaredType returns the declared (constructor-facing) type of a property.
func declaredType(p synth.Property) string {
	return goType(p.Spec.Type)
}

// importsFor scans rendered code fragments for package references and
// returns the std and module import lists. The scan-the-output approach
// keeps snippet builders free of import bookkeeping.
func importsFor(fragments []string, extra []string) (std, mod []string) {
	paths := make(map[string]bool)

	aliases := make(map[string]string, len(knownImportPaths)+len(extra))
	for a, p := range knownImportPaths {
		aliases[a] = p
	}

	for _, p := range extra {
		aliases[common.PkgAlias(p)] = p
	}

	for _, frag := range fragments {
		if strings.Contains(frag, "fmt.") {
			paths["fmt"] = true
		}

		if strings.Contains(frag, "immutable.") {
			paths[runtimePkg] = true
		}

		for alias, path := range aliases {
			if strings.Contains(frag, alias+".") {
				paths[path] = true
			}
		}
	}

	for p := range paths {
		if strings.Contains(p, "/") && !stdPath(p) {
			mod = append(mod, p)
		} else {
			std = append(std, p)
		}
	}

	sort.Strings(std)
	sort.Strings(mod)

	return std, mod
}

// stdPath reports whether a slash-containing path belongs to the standard
// library (e.g. "math/big").
func stdPath(p string) bool {
	switch strings.SplitN(p, "/", 2)[0] {
	case "math", "encoding", "container", "crypto", "hash", "net", "os", "path", "text", "go", "index", "runtime", "sync", "unicode":
		return true
	default:
		return false
	}
}
