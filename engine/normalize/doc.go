/*
Package normalize converts heterogeneous glyph input into a uniform
sequence of renderable glyphs.

Callers arrive with one of four shapes: spelling-display entries (a tagged
union of grapheme references and raw IPA characters), plain glyph records,
composite grapheme records, or a sequence of numeric glyph ids. The
normalizer detects the shape, resolves references through the caller's
lookup collaborators, and synthesizes virtual placeholder glyphs for IPA
characters lacking a real mapping.

Normalization never fails. Entries that cannot be resolved are dropped with
a diagnostic; a missing lookup degrades to empty output. Partial layout is
preferable to a hard failure in a rendering path.
*/
package normalize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphlayout.normalize'.
func tracer() tracing.Trace {
	return tracing.Select("glyphlayout.normalize")
}
