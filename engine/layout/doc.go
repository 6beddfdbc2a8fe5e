/*
Package layout computes 2D positions and bounding boxes for glyph
sequences.

Layout may be understood as the process of placing boxes within a larger
box. Every glyph is an opaque box of uniform size; a layout strategy maps an
ordered glyph sequence and a configuration to exact positions plus a padded
bounding box. Strategies range from simple linear rows over wrapping blocks
and spirals to the composed block strategy, which layers three independent
directional axes (glyph direction, word order, line progression) the way a
constructed writing system prescribes.

All strategies are pure: no strategy reads or writes anything outside its
arguments, and concurrent callers need no coordination. The package keeps a
registry of named strategies; an unknown name falls back to linear
left-to-right with a diagnostic rather than failing, since a slightly wrong
layout beats no layout in a rendering path.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphlayout.layout'.
func tracer() tracing.Trace {
	return tracing.Select("glyphlayout.layout")
}
