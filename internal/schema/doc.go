// Package schema defines the input model of the synthesizer: class
// specifications with ordered property lists, user method signatures, and
// schema-level type references.
//
// A ClassSpec is produced by a discovery adapter (YAML file or package scan)
// and consumed read-only by classification, validation, and synthesis.
package schema
