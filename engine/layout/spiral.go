package layout

import (
	"github.com/conscript/glyphlayout/core/glyph"
)

// Spiral returns the spiral strategy: glyphs walk an Ulam-style integer
// grid outwards from the center, direction order right, up, left, down,
// with the leg length growing by one every two turns (1,1,2,2,3,3,...).
func Spiral() Strategy {
	return spiral{}
}

type spiral struct{}

func (spiral) Name() string { return NameSpiral }

type gridCell struct {
	x, y int
}

// spiralCells generates the first n cells of the spiral walk. All cells are
// pairwise distinct.
func spiralCells(n int) []gridCell {
	if n <= 0 {
		return nil
	}
	cells := make([]gridCell, 1, n)
	cells[0] = gridCell{0, 0}
	// right, up, left, down in screen coordinates (y grows downward)
	dirs := [4]gridCell{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
	x, y := 0, 0
	d := 0
	for step := 1; len(cells) < n; step++ {
		for leg := 0; leg < 2 && len(cells) < n; leg++ {
			for i := 0; i < step && len(cells) < n; i++ {
				x += dirs[d].x
				y += dirs[d].y
				cells = append(cells, gridCell{x, y})
			}
			d = (d + 1) % 4
		}
	}
	return cells
}

func (spiral) Calculate(glyphs []glyph.Renderable, cfg Config) Result {
	if len(glyphs) == 0 {
		return Result{Bounds: EmptyBounds(cfg)}
	}
	cells := spiralCells(len(glyphs))
	minX, minY := cells[0].x, cells[0].y
	for _, c := range cells {
		if c.x < minX {
			minX = c.x
		}
		if c.y < minY {
			minY = c.y
		}
	}
	// scale grid cells to glyph boxes and shift the minimum onto padding
	positions := make([]PositionedGlyph, len(glyphs))
	for i, g := range glyphs {
		positions[i] = PositionedGlyph{
			Glyph:  g,
			X:      cfg.Padding + float64(cells[i].x-minX)*(cfg.GlyphWidth+cfg.Spacing),
			Y:      cfg.Padding + float64(cells[i].y-minY)*(cfg.GlyphHeight+cfg.Spacing),
			Width:  cfg.GlyphWidth,
			Height: cfg.GlyphHeight,
			Index:  i,
		}
	}
	return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
}
