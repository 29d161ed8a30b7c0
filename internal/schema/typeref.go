package schema

import (
	"fmt"
	"strconv"
	"strings"

	"immutagen/internal/common"
)

// Kind represents the structural kind of a type reference.
type Kind int

const (
	KindInvalid Kind = iota
	KindBasic        // predeclared types: int, string, bool, float64, ...
	KindNamed        // named types: Money, time.Time, big.Int
	KindPointer      // *T
	KindSlice        // []T
	KindArray        // [N]T
	KindMap          // map[K]V
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBasic:
		return "basic"
	case KindNamed:
		return "named"
	case KindPointer:
		return "pointer"
	case KindSlice:
		return "slice"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return common.UnknownStr
	}
}

// TypeRef is a schema-level type reference. It carries only what
// classification needs: the structural kind and, for named types, the
// qualified name looked up in the classification table.
type TypeRef struct {
	// Kind of the reference.
	Kind Kind
	// Name is set for KindBasic and KindNamed (e.g. "string", "time.Time").
	Name string
	// Key is the key type for KindMap.
	Key *TypeRef
	// Elem is the element type for pointers, slices, arrays, and maps.
	Elem *TypeRef
	// Len is the declared length for KindArray.
	Len int
}

// basicTypes is the set of predeclared Go type names.
var basicTypes = map[string]struct{}{
	"bool": {}, "string": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {}, "uintptr": {},
	"byte": {}, "rune": {},
	"float32": {}, "float64": {},
	"complex64": {}, "complex128": {},
}

// IsBasic reports whether name is a predeclared type name.
func IsBasic(name string) bool {
	_, ok := basicTypes[name]
	return ok
}

// String renders the canonical form of the reference.
func (t TypeRef) String() string {
	switch t.Kind {
	case KindBasic, KindNamed:
		return t.Name
	case KindPointer:
		return "*" + t.Elem.String()
	case KindSlice:
		return "[]" + t.Elem.String()
	case KindArray:
		return fmt.Sprintf("[%d]%s", t.Len, t.Elem.String())
	case KindMap:
		return fmt.Sprintf("map[%s]%s", t.Key.String(), t.Elem.String())
	default:
		return "<invalid>"
	}
}

// IsZero reports whether the reference is unset.
func (t TypeRef) IsZero() bool {
	return t.Kind == KindInvalid && t.Name == ""
}

// ParseTypeRef parses a Go-like type string into a TypeRef.
// Supported forms: "T", "pkg.T", "*T", "[]T", "[N]T", "map[K]V", nested
// combinations thereof.
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeRef{}, fmt.Errorf("empty type string")
	}

	switch {
	case strings.HasPrefix(s, "*"):
		elem, err := ParseTypeRef(s[1:])
		if err != nil {
			return TypeRef{}, err
		}

		return TypeRef{Kind: KindPointer, Elem: &elem}, nil

	case strings.HasPrefix(s, "[]"):
		elem, err := ParseTypeRef(s[2:])
		if err != nil {
			return TypeRef{}, err
		}

		return TypeRef{Kind: KindSlice, Elem: &elem}, nil

	case strings.HasPrefix(s, "["):
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return TypeRef{}, fmt.Errorf("unterminated array length in %q", s)
		}

		n, err := strconv.Atoi(s[1:end])
		if err != nil || n < 0 {
			return TypeRef{}, fmt.Errorf("bad array length in %q", s)
		}

		elem, err := ParseTypeRef(s[end+1:])
		if err != nil {
			return TypeRef{}, err
		}

		return TypeRef{Kind: KindArray, Len: n, Elem: &elem}, nil

	case strings.HasPrefix(s, "map["):
		keyEnd, err := matchBracket(s, len("map"))
		if err != nil {
			return TypeRef{}, fmt.Errorf("%v in %q", err, s)
		}

		key, err := ParseTypeRef(s[len("map["):keyEnd])
		if err != nil {
			return TypeRef{}, err
		}

		elem, err := ParseTypeRef(s[keyEnd+1:])
		if err != nil {
			return TypeRef{}, err
		}

		return TypeRef{Kind: KindMap, Key: &key, Elem: &elem}, nil

	default:
		if !validName(s) {
			return TypeRef{}, fmt.Errorf("bad type name %q", s)
		}

		if IsBasic(s) {
			return TypeRef{Kind: KindBasic, Name: s}, nil
		}

		return TypeRef{Kind: KindNamed, Name: s}, nil
	}
}

// MustParseTypeRef is ParseTypeRef for known-good literals (tests, defaults).
func MustParseTypeRef(s string) TypeRef {
	t, err := ParseTypeRef(s)
	if err != nil {
		panic(err)
	}

	return t
}

// matchBracket returns the index of the ']' matching the '[' at s[open],
// accounting for nested brackets (map keys can themselves be composite).
func matchBracket(s string, open int) (int, error) {
	if open >= len(s) || s[open] != '[' {
		return 0, fmt.Errorf("expected '['")
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("unbalanced brackets")
}

// validName checks a (possibly package-qualified) identifier.
func validName(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return false
	}

	for _, p := range parts {
		if p == "" {
			return false
		}

		for i, r := range p {
			switch {
			case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			case r >= '0' && r <= '9':
				if i == 0 {
					return false
				}
			case r == '/':
				// allow full import paths in the package part
				if i == 0 {
					return false
				}
			default:
				return false
			}
		}
	}

	return true
}
