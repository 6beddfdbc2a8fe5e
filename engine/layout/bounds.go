package layout

import "math"

// Bounds is the padded bounding box of a laid-out glyph sequence.
// Width and Height always equal MaxX-MinX and MaxY-MinY.
type Bounds struct {
	Width  float64
	Height float64
	MinX   float64
	MinY   float64
	MaxX   float64
	MaxY   float64
}

// Contains reports whether the glyph box of pos lies fully inside b.
func (b Bounds) Contains(pos PositionedGlyph) bool {
	return pos.X >= b.MinX && pos.Y >= b.MinY &&
		pos.X+pos.Width <= b.MaxX && pos.Y+pos.Height <= b.MaxY
}

// EmptyBounds is the bounding box of an empty glyph sequence: one glyph box
// plus padding on each side, anchored at the origin.
func EmptyBounds(cfg Config) Bounds {
	w := cfg.GlyphWidth + 2*cfg.Padding
	h := cfg.GlyphHeight + 2*cfg.Padding
	return Bounds{Width: w, Height: h, MaxX: w, MaxY: h}
}

// BoundsOf derives the tight padded bounding box of a set of positioned
// glyphs. It is a pure function of its inputs and is used identically by
// every strategy, so positions and bounds are always mutually consistent.
func BoundsOf(positions []PositionedGlyph, cfg Config) Bounds {
	if len(positions) == 0 {
		return EmptyBounds(cfg)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxX = math.Max(maxX, pos.X+pos.Width)
		maxY = math.Max(maxY, pos.Y+pos.Height)
	}
	minX -= cfg.Padding
	minY -= cfg.Padding
	maxX += cfg.Padding
	maxY += cfg.Padding
	return Bounds{
		Width:  maxX - minX,
		Height: maxY - minY,
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
	}
}
