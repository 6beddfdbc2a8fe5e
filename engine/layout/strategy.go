package layout

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/conscript/glyphlayout/core/glyph"
)

// PositionedGlyph is a glyph with its computed position. X/Y address the
// top-left corner of the glyph box; Width/Height equal the config's glyph
// box unless a strategy intentionally rescales. Index is the position
// within the output sequence, which need not equal the glyph's SourceIndex.
// Rotation is in degrees, clockwise, 0 for upright.
type PositionedGlyph struct {
	Glyph    glyph.Renderable
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Index    int
	Rotation float64
}

// Result is the output of a layout strategy: exact positions for every
// rendered glyph plus the padded bounding box enclosing them.
type Result struct {
	Positions []PositionedGlyph
	Bounds    Bounds
}

// Strategy maps a glyph sequence and a configuration to positions and
// bounds. Implementations are pure functions over their arguments.
type Strategy interface {
	Name() string
	Calculate(glyphs []glyph.Renderable, cfg Config) Result
}

// Registered strategy names.
const (
	NameLinearLTR     = "linear-ltr"
	NameLinearRTL     = "linear-rtl"
	NameLinearTTB     = "linear-ttb"
	NameLinearBTT     = "linear-btt"
	NameBlock         = "block"
	NameBoustrophedon = "boustrophedon"
	NameSpiral        = "spiral"
	NameCircular      = "circular"
	NameComposedBlock = "composed-block"
)

// Registry is a name-keyed table of layout strategies.
type Registry struct {
	strategies *treemap.Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: treemap.NewWithStringComparator()}
}

// Register adds a strategy under its own name, replacing any previous entry.
func (r *Registry) Register(s Strategy) {
	r.strategies.Put(s.Name(), s)
}

// Get resolves a strategy name. An unknown name falls back to linear
// left-to-right with a diagnostic; Get never fails.
func (r *Registry) Get(name string) Strategy {
	if s, ok := r.strategies.Get(name); ok {
		return s.(Strategy)
	}
	tracer().Errorf("unknown layout strategy '%s', falling back to %s", name, NameLinearLTR)
	return Linear(LeftToRight)
}

// ListNames enumerates the registered strategy names in sorted order, for
// UI population.
func (r *Registry) ListNames() []string {
	keys := r.strategies.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.Register(Linear(LeftToRight))
	defaultRegistry.Register(Linear(RightToLeft))
	defaultRegistry.Register(Linear(TopToBottom))
	defaultRegistry.Register(Linear(BottomToTop))
	defaultRegistry.Register(Block())
	defaultRegistry.Register(Boustrophedon())
	defaultRegistry.Register(Spiral())
	defaultRegistry.Register(Circular())
	defaultRegistry.Register(NewComposedBlock(DefaultSystem()))
}

// GetStrategy resolves a name against the package's default registry.
func GetStrategy(name string) Strategy {
	return defaultRegistry.Get(name)
}

// ListStrategies enumerates the default registry's strategy names.
func ListStrategies() []string {
	return defaultRegistry.ListNames()
}
