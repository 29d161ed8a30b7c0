package immutable

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Map is a read-only view over a Go map. Like List, it is a shallow wrap:
// structural mutation through the view fails, but mutable values reachable
// through it remain mutable.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// WrapMap wraps a map in a read-only view without copying it.
func WrapMap[K comparable, V any](entries map[K]V) Map[K, V] {
	return Map[K, V]{entries: entries}
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return len(m.entries)
}

// Get returns the value for key and whether it was present.
func (m Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the keys in a deterministic order (sorted by their formatted
// representation). Determinism matters because generated String methods
// render map properties through this view.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})

	return keys
}

// Range calls fn for each entry in deterministic key order until fn
// returns false.
func (m Map[K, V]) Range(fn func(k K, v V) bool) {
	for _, k := range m.Keys() {
		if !fn(k, m.entries[k]) {
			return
		}
	}
}

// Put always fails with ErrUnsupportedMutation.
func (m Map[K, V]) Put(_ K, _ V) error {
	return ErrUnsupportedMutation
}

// Delete always fails with ErrUnsupportedMutation.
func (m Map[K, V]) Delete(_ K) error {
	return ErrUnsupportedMutation
}

// String renders the view like a Go map literal with deterministic key
// order, e.g. "map[a:1 b:2]".
func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")

	for i, k := range m.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "%v:%v", k, m.entries[k])
	}

	sb.WriteByte(']')

	return sb.String()
}

// MapEqual reports whether two views hold the same entries. Values compare
// via reflect.DeepEqual, so the value type does not have to be comparable.
func MapEqual[K comparable, V any](a, b Map[K, V]) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}

	for k, av := range a.entries {
		bv, ok := b.entries[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}

	return true
}
