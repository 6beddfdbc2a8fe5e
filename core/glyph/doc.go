/*
Package glyph provides the glyph data model of the layout engine.

A glyph is the atomic visual unit the engine positions. It is either a
stored drawing from the glyph database or a synthesized virtual placeholder
for an IPA character that has no grapheme mapping yet. The engine treats
every glyph as an opaque box; the drawable payload is passed through to
renderers untouched.

Virtual glyphs carry a deterministic negative id derived from their IPA
character, so that repeated layout passes over the same phrase produce
stable identities without consulting any store.
*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphlayout.glyph'.
func tracer() tracing.Trace {
	return tracing.Select("glyphlayout.glyph")
}
