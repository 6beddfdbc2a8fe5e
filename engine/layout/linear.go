package layout

import (
	"github.com/conscript/glyphlayout/core/glyph"
)

// Linear returns the linear strategy for direction d: one straight run of
// glyphs, advancing one glyph box plus spacing per step. Reversed
// directions mirror the run about its far edge, so glyph 0 sits rightmost
// (rtl) or bottommost (btt) while the sequence still starts at padding.
func Linear(d Direction) Strategy {
	return linear{dir: d}
}

type linear struct {
	dir Direction
}

func (l linear) Name() string {
	return "linear-" + l.dir.String()
}

func (l linear) Calculate(glyphs []glyph.Renderable, cfg Config) Result {
	if len(glyphs) == 0 {
		return Result{Bounds: EmptyBounds(cfg)}
	}
	n := float64(len(glyphs))
	positions := make([]PositionedGlyph, len(glyphs))
	for i, g := range glyphs {
		x, y := cfg.Padding, cfg.Padding
		step := float64(i)
		switch l.dir {
		case LeftToRight:
			x += step * (cfg.GlyphWidth + cfg.Spacing)
		case RightToLeft:
			total := n*cfg.GlyphWidth + (n-1)*cfg.Spacing
			x += total - cfg.GlyphWidth - step*(cfg.GlyphWidth+cfg.Spacing)
		case TopToBottom:
			y += step * (cfg.GlyphHeight + cfg.Spacing)
		case BottomToTop:
			total := n*cfg.GlyphHeight + (n-1)*cfg.Spacing
			y += total - cfg.GlyphHeight - step*(cfg.GlyphHeight+cfg.Spacing)
		}
		positions[i] = PositionedGlyph{
			Glyph:  g,
			X:      x,
			Y:      y,
			Width:  cfg.GlyphWidth,
			Height: cfg.GlyphHeight,
			Index:  i,
		}
	}
	return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
}
