// Package classify maps declared property types to handling categories.
//
// Classification is total and deterministic: every TypeRef maps to exactly
// one TypeCategory, and unclassifiable types fall through to
// CategoryDisallowed instead of raising, so errors surface uniformly through
// the validator.
//
// All knowledge about named types (enums, known-immutable values, cloneables,
// date-likes, previously synthesized classes) lives in an explicitly
// constructed Table value, never in package state, keeping classification
// pure and testable in isolation.
package classify
