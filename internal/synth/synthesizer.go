package synth

import (
	"context"

	"golang.org/x/sync/errgroup"

	"immutagen/internal/classify"
	"immutagen/internal/diagnostic"
	"immutagen/internal/schema"
	"immutagen/internal/validate"
)

// Synthesizer derives immutable class artifacts from class specifications.
// It holds no mutable state; one Synthesizer serves concurrent batches.
type Synthesizer struct {
	table classify.Table
}

// New creates a Synthesizer over the given classification table.
func New(table classify.Table) *Synthesizer {
	return &Synthesizer{table: table}
}

// Class synthesizes a single class. On validation errors the returned
// artifact is nil and the diagnostics carry every violation found.
func (s *Synthesizer) Class(spec *schema.ClassSpec) (*ClassArtifact, diagnostic.Diagnostics) {
	return s.classWithTable(s.table, spec)
}

func (s *Synthesizer) classWithTable(
	tbl classify.Table,
	spec *schema.ClassSpec,
) (*ClassArtifact, diagnostic.Diagnostics) {
	diags := validate.Class(tbl, spec)
	if diags.HasErrors() {
		return nil, diags
	}

	props, err := members(tbl, spec)
	if err != nil {
		// Unreachable after validation; kept so a future caller that skips
		// validation still gets a classification error, not a bad artifact.
		diags.AddError(diagnostic.CodeDisallowedType, err.Error(), spec.Name, "", "")
		return nil, diags
	}

	return &ClassArtifact{
		Name:       spec.Name,
		Package:    spec.Package,
		Properties: props,
		Methods:    structuralMethods(spec),
	}, diags
}

// ClassResult pairs one input spec with its synthesis outcome.
type ClassResult struct {
	// Spec is the input class specification.
	Spec *schema.ClassSpec
	// Artifact is nil when synthesis failed for this class.
	Artifact *ClassArtifact
	// Diags holds this class's errors and warnings.
	Diags diagnostic.Diagnostics
}

// BatchResult is the outcome of synthesizing a batch of classes.
type BatchResult struct {
	// Classes holds one result per input spec, in input order.
	Classes []ClassResult
}

// Artifacts returns the successfully synthesized artifacts in input order.
func (r *BatchResult) Artifacts() []*ClassArtifact {
	var out []*ClassArtifact
	for _, c := range r.Classes {
		if c.Artifact != nil {
			out = append(out, c.Artifact)
		}
	}

	return out
}

// Diagnostics merges all per-class diagnostics, in input order.
func (r *BatchResult) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, c := range r.Classes {
		all.Merge(c.Diags)
	}

	return all
}

// HasErrors reports whether any class in the batch failed.
func (r *BatchResult) HasErrors() bool {
	for _, c := range r.Classes {
		if c.Diags.HasErrors() {
			return true
		}
	}

	return false
}

// Batch synthesizes a set of classes. Every batch class name is pre-registered
// as user-immutable before any class is classified, so classes in the batch
// may reference each other regardless of order. Classes are independent and
// run concurrently; a failing class contributes diagnostics without aborting
// the rest. Results come back in input order.
func (s *Synthesizer) Batch(ctx context.Context, specs []*schema.ClassSpec) (*BatchResult, error) {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}

	tbl := s.table.WithUserImmutable(names...)

	result := &BatchResult{Classes: make([]ClassResult, len(specs))}

	g, gctx := errgroup.WithContext(ctx)

	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			artifact, diags := s.classWithTable(tbl, spec)
			result.Classes[i] = ClassResult{Spec: spec, Artifact: artifact, Diags: diags}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
