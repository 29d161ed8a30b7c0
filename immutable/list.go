package immutable

import (
	"fmt"
	"reflect"
)

// List is a read-only view over a slice. The view shares the backing array
// with the wrapped slice (shallow wrap, not a deep clone): mutating the view
// fails, while mutable elements reachable through it remain mutable.
type List[T any] struct {
	items []T
}

// WrapList wraps a slice in a read-only view without copying it.
func WrapList[T any](items []T) List[T] {
	return List[T]{items: items}
}

// ListOf builds a List from its own defensive copy of the given values.
func ListOf[T any](items ...T) List[T] {
	cp := make([]T, len(items))
	copy(cp, items)

	return List[T]{items: cp}
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics on out-of-range indices, the
// same way a slice index does.
func (l List[T]) At(i int) T {
	return l.items[i]
}

// Values returns a fresh copy of the elements. Mutating the returned slice
// does not affect the view.
func (l List[T]) Values() []T {
	cp := make([]T, len(l.items))
	copy(cp, l.items)

	return cp
}

// Range calls fn for each element in order until fn returns false.
func (l List[T]) Range(fn func(i int, v T) bool) {
	for i, v := range l.items {
		if !fn(i, v) {
			return
		}
	}
}

// Set always fails with ErrUnsupportedMutation.
func (l List[T]) Set(_ int, _ T) error {
	return ErrUnsupportedMutation
}

// Append always fails with ErrUnsupportedMutation.
func (l List[T]) Append(_ ...T) error {
	return ErrUnsupportedMutation
}

// String renders the view like the underlying slice, e.g. "[a b c]".
// Generated String and Hash methods rely on this being deterministic.
func (l List[T]) String() string {
	return fmt.Sprint(l.items)
}

// ListEqual reports whether two views hold equal elements in the same order.
// Elements compare via reflect.DeepEqual, so the element type does not have
// to be comparable ([][]int, []big.Int).
func ListEqual[T any](a, b List[T]) bool {
	if len(a.items) != len(b.items) {
		return false
	}

	for i := range a.items {
		if !reflect.DeepEqual(a.items[i], b.items[i]) {
			return false
		}
	}

	return true
}
