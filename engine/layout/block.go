package layout

import (
	"math"

	"github.com/conscript/glyphlayout/core/glyph"
)

// glyphsPerRow derives the row capacity from MaxWidth. Without a width
// constraint the block strategies use 5 glyphs per row.
func glyphsPerRow(cfg Config) int {
	if cfg.MaxWidth <= 0 {
		return 5
	}
	n := int(math.Floor((cfg.MaxWidth - 2*cfg.Padding + cfg.Spacing) / (cfg.GlyphWidth + cfg.Spacing)))
	if n < 1 {
		return 1
	}
	return n
}

// Block returns the block strategy: glyphs wrap into fixed-width rows,
// every row filled left to right.
func Block() Strategy {
	return block{}
}

type block struct{}

func (block) Name() string { return NameBlock }

func (block) Calculate(glyphs []glyph.Renderable, cfg Config) Result {
	if len(glyphs) == 0 {
		return Result{Bounds: EmptyBounds(cfg)}
	}
	perRow := glyphsPerRow(cfg)
	positions := make([]PositionedGlyph, len(glyphs))
	for i, g := range glyphs {
		row := i / perRow
		col := i % perRow
		positions[i] = PositionedGlyph{
			Glyph:  g,
			X:      cfg.Padding + float64(col)*(cfg.GlyphWidth+cfg.Spacing),
			Y:      cfg.Padding + float64(row)*(cfg.GlyphHeight+cfg.Spacing),
			Width:  cfg.GlyphWidth,
			Height: cfg.GlyphHeight,
			Index:  i,
		}
	}
	return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
}

// Boustrophedon returns the boustrophedon strategy: block rows with every
// odd row mirrored, "as the ox plows". The mirror edge is the nominal row
// width derived from the row capacity, so a short last mirrored row stays
// right-aligned to the full rows above it.
func Boustrophedon() Strategy {
	return boustrophedon{}
}

type boustrophedon struct{}

func (boustrophedon) Name() string { return NameBoustrophedon }

func (boustrophedon) Calculate(glyphs []glyph.Renderable, cfg Config) Result {
	if len(glyphs) == 0 {
		return Result{Bounds: EmptyBounds(cfg)}
	}
	perRow := glyphsPerRow(cfg)
	fullRowWidth := float64(perRow)*cfg.GlyphWidth + float64(perRow-1)*cfg.Spacing
	rightEdge := cfg.Padding + fullRowWidth - cfg.GlyphWidth
	positions := make([]PositionedGlyph, len(glyphs))
	for i, g := range glyphs {
		row := i / perRow
		col := i % perRow
		x := cfg.Padding + float64(col)*(cfg.GlyphWidth+cfg.Spacing)
		if row%2 == 1 {
			x = rightEdge - float64(col)*(cfg.GlyphWidth+cfg.Spacing)
		}
		positions[i] = PositionedGlyph{
			Glyph:  g,
			X:      x,
			Y:      cfg.Padding + float64(row)*(cfg.GlyphHeight+cfg.Spacing),
			Width:  cfg.GlyphWidth,
			Height: cfg.GlyphHeight,
			Index:  i,
		}
	}
	return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
}
