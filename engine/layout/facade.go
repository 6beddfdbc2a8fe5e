package layout

import (
	"github.com/conscript/glyphlayout/core/glyph"
	"github.com/conscript/glyphlayout/engine/normalize"
)

// Layout is the single entry point for callers: it normalizes the input,
// resolves the configuration and dispatches to the named strategy.
//
// All degradable conditions degrade inside the pipeline (unknown strategy,
// unresolvable ids, missing lookups), so Layout never fails; at worst it
// returns an empty result with empty-state bounds.
func Layout(input interface{}, strategyName string, preset Preset, over *Override, ctx normalize.Context) Result {
	glyphs := normalize.Glyphs(input, ctx)
	cfg := ResolveConfig(preset, over)
	strat := GetStrategy(strategyName)
	tracer().Debugf("laying out %d glyphs with strategy %s", len(glyphs), strat.Name())
	return strat.Calculate(glyphs, cfg)
}

// LayoutGlyphs runs an already-normalized glyph sequence through a named
// strategy with a resolved config.
func LayoutGlyphs(glyphs []glyph.Renderable, strategyName string, cfg Config) Result {
	return GetStrategy(strategyName).Calculate(glyphs, cfg)
}
