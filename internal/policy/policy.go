// Package policy defines the defensive copy policy per type category: what
// happens to a property value on the way into the constructor and on the way
// out of an accessor.
package policy

import (
	"fmt"

	"immutagen/internal/classify"
)

//go:generate go tool stringer -type=CopyAction -output=copyaction_string.go

// CopyAction is a single copy-in or copy-out transformation.
type CopyAction int

const (
	// ActionNone passes the value through unchanged.
	ActionNone CopyAction = iota
	// ActionCloneValue copies the value (array/value assignment, or a Clone
	// call for cloneable objects).
	ActionCloneValue
	// ActionWrapUnmodifiable wraps the value in a read-only view. The wrap is
	// shallow: nested mutable elements stay mutable.
	ActionWrapUnmodifiable
)

// CopyPolicy pairs the construction-time and access-time actions for one
// category. Copy-in prevents a caller from retaining a mutable alias into the
// instance; copy-out prevents mutation of internal state through a returned
// reference.
type CopyPolicy struct {
	OnConstruct CopyAction
	OnAccess    CopyAction
}

// For returns the copy policy for a category. CategoryDisallowed has no
// policy: it is a classification error, not a copy strategy.
func For(c classify.TypeCategory) (CopyPolicy, error) {
	switch c {
	case classify.CategoryPrimitive,
		classify.CategoryEnum,
		classify.CategoryKnownImmutable,
		classify.CategoryUserImmutable:
		return CopyPolicy{OnConstruct: ActionNone, OnAccess: ActionNone}, nil

	case classify.CategoryCloneableArray,
		classify.CategoryCloneableObject,
		classify.CategoryDateLike:
		return CopyPolicy{OnConstruct: ActionCloneValue, OnAccess: ActionCloneValue}, nil

	case classify.CategoryCollection,
		classify.CategoryMap:
		return CopyPolicy{OnConstruct: ActionWrapUnmodifiable, OnAccess: ActionWrapUnmodifiable}, nil

	default:
		return CopyPolicy{}, fmt.Errorf("no copy policy for category %s", c)
	}
}
