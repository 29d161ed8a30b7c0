// Package gen renders synthesized class artifacts into Go source files.
//
// Generation approach uses text/template + go/format for readable,
// deterministic output. The emitter owns everything textual: field
// declarations, the two constructor forms, accessors, and structural method
// bodies. All semantic decisions (categories, copy policies, override
// resolution) are made upstream in internal/synth.
package gen
