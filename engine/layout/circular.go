package layout

import (
	"math"

	"github.com/conscript/glyphlayout/core/glyph"
)

// Circular returns the circular strategy: glyphs sit on a ring, starting at
// 12 o'clock and advancing clockwise. The radius grows with the glyph count
// so that neighbouring boxes never overlap. Each glyph is rotated to follow
// the ring.
func Circular() Strategy {
	return circular{}
}

type circular struct{}

func (circular) Name() string { return NameCircular }

func (circular) Calculate(glyphs []glyph.Renderable, cfg Config) Result {
	switch len(glyphs) {
	case 0:
		return Result{Bounds: EmptyBounds(cfg)}
	case 1:
		positions := []PositionedGlyph{{
			Glyph:  glyphs[0],
			X:      cfg.Padding,
			Y:      cfg.Padding,
			Width:  cfg.GlyphWidth,
			Height: cfg.GlyphHeight,
		}}
		return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
	case 2:
		positions := []PositionedGlyph{
			{
				Glyph:  glyphs[0],
				X:      cfg.Padding,
				Y:      cfg.Padding,
				Width:  cfg.GlyphWidth,
				Height: cfg.GlyphHeight,
			},
			{
				Glyph:  glyphs[1],
				X:      cfg.Padding + cfg.GlyphWidth + cfg.Spacing,
				Y:      cfg.Padding,
				Width:  cfg.GlyphWidth,
				Height: cfg.GlyphHeight,
				Index:  1,
			},
		}
		return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
	}
	n := float64(len(glyphs))
	diag := math.Hypot(cfg.GlyphWidth, cfg.GlyphHeight)
	// circumference must hold n glyph diagonals plus gaps
	r := n * (diag + cfg.Spacing) / (2 * math.Pi)
	if r < diag {
		r = diag
	}
	cx := cfg.Padding + r + cfg.GlyphWidth/2
	cy := cfg.Padding + r + cfg.GlyphHeight/2
	positions := make([]PositionedGlyph, len(glyphs))
	for i, g := range glyphs {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/n
		positions[i] = PositionedGlyph{
			Glyph:    g,
			X:        cx + r*math.Cos(angle) - cfg.GlyphWidth/2,
			Y:        cy + r*math.Sin(angle) - cfg.GlyphHeight/2,
			Width:    cfg.GlyphWidth,
			Height:   cfg.GlyphHeight,
			Index:    i,
			Rotation: (angle + math.Pi/2) * 180 / math.Pi,
		}
	}
	return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
}
