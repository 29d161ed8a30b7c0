// Package diagnostic provides structured errors and warnings produced while
// validating and synthesizing immutable classes.
//
// Key capabilities:
//   - classification errors naming the property and its declared type
//   - convention warnings for properties outside the standard significance rules
//   - per-class aggregation so a batch reports every violation, not just the first
package diagnostic
