// Package synth turns validated class specifications into class artifacts:
// the storage fields, both constructor forms, accessors, and structural
// methods of an enforced-immutable class.
//
// Synthesis pipeline per class:
//
//	classify properties -> validate -> member synthesis -> structural methods
//
// The package produces a semantic ClassArtifact model; rendering it to Go
// source is the emitter's concern (internal/gen). Synthesis is referentially
// pure given a ClassSpec and a classification table, so a batch runs its
// classes concurrently.
package synth
