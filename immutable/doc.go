// Package immutable is the runtime support library imported by generated
// immutable classes.
//
// It provides:
//   - read-only views over slices and maps (List, Map) whose mutating
//     operations fail with ErrUnsupportedMutation
//   - deterministic hash combinators used by generated Hash methods
//   - the error values generated constructors return
//
// The views are shallow: they prevent structural mutation through the view,
// but elements that are themselves mutable stay mutable. Generated code
// documents this limitation on the owning class.
package immutable
