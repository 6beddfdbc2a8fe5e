package layout

import (
	"math"

	"github.com/conscript/glyphlayout/core/glyph"
)

// Alignment is the cross-axis alignment of words within a line.
type Alignment int

// Word alignments along the cross-axis of the word order.
const (
	AlignTop Alignment = iota
	AlignCenter
	AlignBottom
)

// ParseAlignment maps an alignment name to its Alignment. Unknown names
// resolve to top.
func ParseAlignment(s string) Alignment {
	switch s {
	case "center":
		return AlignCenter
	case "bottom":
		return AlignBottom
	}
	return AlignTop
}

// WrapMode controls whether lines wrap at the configured extent.
type WrapMode int

// Wrap modes.
const (
	NoWrap WrapMode = iota
	Wrap
)

// System describes a constructed writing system's directional behavior:
// three independent axes plus alignment and wrap policy. Glyph direction
// orders glyphs within a word, word order orders words within a line, line
// progression stacks lines.
type System struct {
	GlyphDirection  Direction
	WordOrder       Direction
	LineProgression Direction
	Baseline        Alignment
	Wrap            WrapMode
}

// DefaultSystem is plain horizontal writing: glyphs and words left to
// right, lines top to bottom, top-aligned, wrapping at MaxWidth.
func DefaultSystem() System {
	return System{
		GlyphDirection:  LeftToRight,
		WordOrder:       LeftToRight,
		LineProgression: TopToBottom,
		Wrap:            Wrap,
	}
}

// ComposedBlock lays out glyphs according to a writing-system descriptor,
// with word and line segmentation taken from explicit boundary index sets.
// Word-boundary glyphs (e.g. a space character) are rendered like any other
// glyph; line-break glyphs are consumed by the break and not rendered.
type ComposedBlock struct {
	system         System
	wordBoundaries map[int]bool
	lineBreaks     map[int]bool
}

// ComposedOption configures a composed block strategy.
type ComposedOption func(*ComposedBlock)

// WithWordBoundaries marks input indices as word separators.
func WithWordBoundaries(indices ...int) ComposedOption {
	return func(c *ComposedBlock) {
		for _, i := range indices {
			c.wordBoundaries[i] = true
		}
	}
}

// WithLineBreaks marks input indices as explicit line breaks.
func WithLineBreaks(indices ...int) ComposedOption {
	return func(c *ComposedBlock) {
		for _, i := range indices {
			c.lineBreaks[i] = true
		}
	}
}

// NewComposedBlock creates a composed block strategy for a writing system.
func NewComposedBlock(sys System, opts ...ComposedOption) *ComposedBlock {
	c := &ComposedBlock{
		system:         sys,
		wordBoundaries: make(map[int]bool),
		lineBreaks:     make(map[int]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns "composed-block".
func (c *ComposedBlock) Name() string { return NameComposedBlock }

// wordGroup is a contiguous run of glyphs within one line, or a single
// separator glyph. Confined to one Calculate invocation.
type wordGroup struct {
	glyphs      []glyph.Renderable
	isLineBreak bool
	width       float64
	height      float64
}

func (g wordGroup) extentAlong(d Direction) float64 {
	if d.IsHorizontal() {
		return g.width
	}
	return g.height
}

type composedLine struct {
	words []wordGroup
}

// Calculate segments the sequence into words and lines, packs lines along
// the word-order axis, and places every glyph as the sum of three offset
// contributions, one per directional axis.
func (c *ComposedBlock) Calculate(glyphs []glyph.Renderable, cfg Config) Result {
	if len(glyphs) == 0 {
		return Result{Bounds: EmptyBounds(cfg)}
	}
	groups := c.segment(glyphs)
	for i := range groups {
		c.measure(&groups[i], cfg)
	}
	lines := c.pack(groups, cfg)
	positions := c.place(lines, cfg)
	return Result{Positions: positions, Bounds: BoundsOf(positions, cfg)}
}

// segment splits the glyph sequence at the boundary index sets. A line
// break becomes its own flagged group, a word boundary its own unflagged
// group; runs in between become word groups. No boundaries means the whole
// sequence is one group.
func (c *ComposedBlock) segment(glyphs []glyph.Renderable) []wordGroup {
	var groups []wordGroup
	var run []glyph.Renderable
	flush := func() {
		if len(run) > 0 {
			groups = append(groups, wordGroup{glyphs: run})
			run = nil
		}
	}
	for i, g := range glyphs {
		switch {
		case c.lineBreaks[i]:
			flush()
			groups = append(groups, wordGroup{glyphs: []glyph.Renderable{g}, isLineBreak: true})
		case c.wordBoundaries[i]:
			flush()
			groups = append(groups, wordGroup{glyphs: []glyph.Renderable{g}})
		default:
			run = append(run, g)
		}
	}
	flush()
	return groups
}

// measure computes a group's extent along the glyph-direction axis:
// k glyph boxes plus k-1 spacings along the axis, one glyph box across.
func (c *ComposedBlock) measure(g *wordGroup, cfg Config) {
	k := float64(len(g.glyphs))
	if c.system.GlyphDirection.IsHorizontal() {
		g.width = k*cfg.GlyphWidth + (k-1)*cfg.Spacing
		g.height = cfg.GlyphHeight
	} else {
		g.width = cfg.GlyphWidth
		g.height = k*cfg.GlyphHeight + (k-1)*cfg.Spacing
	}
}

// pack walks the groups and accumulates them onto lines. An explicit line
// break flushes the current line; with wrapping enabled, a word that would
// exceed the available extent along the word-order axis flushes first,
// unless the line is still empty, which guarantees forward progress for an
// over-long single word.
func (c *ComposedBlock) pack(groups []wordGroup, cfg Config) []composedLine {
	avail := math.Inf(1)
	if c.system.Wrap == Wrap {
		if c.system.WordOrder.IsHorizontal() {
			if cfg.MaxWidth > 0 {
				avail = cfg.MaxWidth - 2*cfg.Padding
			}
		} else if cfg.MaxHeight > 0 {
			avail = cfg.MaxHeight - 2*cfg.Padding
		}
	}
	var lines []composedLine
	var cur composedLine
	extent := 0.0
	for _, grp := range groups {
		if grp.isLineBreak {
			lines = append(lines, cur)
			cur = composedLine{}
			extent = 0
			continue
		}
		ext := grp.extentAlong(c.system.WordOrder)
		if len(cur.words) > 0 && extent+cfg.Spacing+ext > avail {
			lines = append(lines, cur)
			cur = composedLine{}
			extent = 0
		}
		if len(cur.words) > 0 {
			extent += cfg.Spacing
		}
		cur.words = append(cur.words, grp)
		extent += ext
	}
	if len(cur.words) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// lineExtent is a line's extent along axis d: the packed length if d is
// parallel to the word order, the maximum word cross-extent otherwise. An
// empty line (from consecutive breaks) occupies one glyph box.
func (c *ComposedBlock) lineExtent(ln composedLine, d Direction, cfg Config) float64 {
	if len(ln.words) == 0 {
		if d.IsHorizontal() {
			return cfg.GlyphWidth
		}
		return cfg.GlyphHeight
	}
	if d.IsHorizontal() == c.system.WordOrder.IsHorizontal() {
		total := 0.0
		for i, w := range ln.words {
			if i > 0 {
				total += cfg.Spacing
			}
			total += w.extentAlong(d)
		}
		return total
	}
	max := 0.0
	for _, w := range ln.words {
		if e := w.extentAlong(d); e > max {
			max = e
		}
	}
	return max
}

func addAlong(x, y *float64, d Direction, amount float64) {
	if d.IsHorizontal() {
		*x += amount
	} else {
		*y += amount
	}
}

// place processes lines in order, accumulating a line offset along the
// line-progression axis, a word offset along the word-order axis and a
// glyph offset along the glyph-direction axis. Reversed word order and
// glyph direction iterate in reverse; reversed line progression negates the
// line contribution so later lines move left/up. Words are aligned within
// their line along the cross-axis of the word order.
func (c *ComposedBlock) place(lines []composedLine, cfg Config) []PositionedGlyph {
	sys := c.system
	crossAxis := TopToBottom
	if !sys.WordOrder.IsHorizontal() {
		crossAxis = LeftToRight
	}
	glyphStep := cfg.GlyphWidth + cfg.Spacing
	if !sys.GlyphDirection.IsHorizontal() {
		glyphStep = cfg.GlyphHeight + cfg.Spacing
	}
	positions := make([]PositionedGlyph, 0, 32)
	lineOffset := 0.0
	for _, ln := range lines {
		lineCross := c.lineExtent(ln, crossAxis, cfg)
		wordOffset := 0.0
		for wi := 0; wi < len(ln.words); wi++ {
			w := ln.words[wi]
			if sys.WordOrder.IsReversed() {
				w = ln.words[len(ln.words)-1-wi]
			}
			var align float64
			switch sys.Baseline {
			case AlignCenter:
				align = (lineCross - w.extentAlong(crossAxis)) / 2
			case AlignBottom:
				align = lineCross - w.extentAlong(crossAxis)
			}
			glyphOffset := 0.0
			for gi := 0; gi < len(w.glyphs); gi++ {
				g := w.glyphs[gi]
				if sys.GlyphDirection.IsReversed() {
					g = w.glyphs[len(w.glyphs)-1-gi]
				}
				x, y := cfg.Padding, cfg.Padding
				addAlong(&x, &y, sys.GlyphDirection, glyphOffset)
				addAlong(&x, &y, sys.WordOrder, wordOffset)
				lc := lineOffset
				if sys.LineProgression.IsReversed() {
					lc = -lc
				}
				addAlong(&x, &y, sys.LineProgression, lc)
				addAlong(&x, &y, crossAxis, align)
				positions = append(positions, PositionedGlyph{
					Glyph:  g,
					X:      x,
					Y:      y,
					Width:  cfg.GlyphWidth,
					Height: cfg.GlyphHeight,
					Index:  len(positions),
				})
				glyphOffset += glyphStep
			}
			wordOffset += w.extentAlong(sys.WordOrder) + cfg.Spacing
		}
		lineOffset += c.lineExtent(ln, sys.LineProgression, cfg) + cfg.Spacing
	}
	return positions
}
