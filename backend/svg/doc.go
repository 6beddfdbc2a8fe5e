/*
Package svg emits laid-out glyph sequences as SVG documents.

The engine itself never draws; this backend is a convenience consumer of
layout results. Stored glyphs are emitted as their path payload, virtual
placeholder glyphs as a dashed box with the IPA character centered in it.
*/
package svg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphlayout.svg'.
func tracer() tracing.Trace {
	return tracing.Select("glyphlayout.svg")
}
