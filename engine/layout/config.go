package layout

import "fmt"

// Config is a complete layout configuration. Dimensions are in abstract
// units (the renderer decides what a unit is on screen). Glyph box
// dimensions are strictly positive; spacing and padding are non-negative.
// MaxWidth/MaxHeight of 0 mean unconstrained.
//
// Configs are value types; strategies receive them by value and never
// mutate them.
type Config struct {
	GlyphWidth  float64
	GlyphHeight float64
	Spacing     float64
	Padding     float64
	MaxWidth    float64
	MaxHeight   float64
}

// DefaultConfig returns the hard-coded default configuration.
func DefaultConfig() Config {
	return Config{GlyphWidth: 20, GlyphHeight: 20, Spacing: 2, Padding: 4}
}

// NewConfig creates a validated configuration. Non-positive glyph box
// dimensions or negative spacing/padding are rejected at construction time,
// so strategies never have to defend against a malformed config.
func NewConfig(glyphWidth, glyphHeight, spacing, padding float64) (Config, error) {
	if glyphWidth <= 0 || glyphHeight <= 0 {
		return Config{}, fmt.Errorf("glyph box dimensions must be positive, got %g x %g",
			glyphWidth, glyphHeight)
	}
	if spacing < 0 || padding < 0 {
		return Config{}, fmt.Errorf("spacing and padding must be non-negative, got %g / %g",
			spacing, padding)
	}
	return Config{
		GlyphWidth:  glyphWidth,
		GlyphHeight: glyphHeight,
		Spacing:     spacing,
		Padding:     padding,
	}, nil
}

// Preset names a pre-defined layout configuration. The type is closed:
// clients use the package constants, making an unknown preset unreachable
// without a deliberate conversion.
type Preset string

// Pre-defined layout configurations.
const (
	PresetDefault    Preset = "default"
	PresetCompact    Preset = "compact"
	PresetDisplay    Preset = "display"
	PresetManuscript Preset = "manuscript"
)

// FromPreset returns the configuration for a preset, i.e. the defaults with
// the preset's fields merged over them. A preset unknown to the package
// (only reachable through a conversion) resolves to the defaults with a
// diagnostic.
func FromPreset(p Preset) Config {
	switch p {
	case PresetDefault, "":
		return DefaultConfig()
	case PresetCompact:
		return Config{GlyphWidth: 16, GlyphHeight: 16, Spacing: 1, Padding: 2}
	case PresetDisplay:
		return Config{GlyphWidth: 32, GlyphHeight: 32, Spacing: 4, Padding: 8}
	case PresetManuscript:
		return Config{GlyphWidth: 24, GlyphHeight: 24, Spacing: 3, Padding: 6, MaxWidth: 400}
	}
	tracer().Infof("unknown layout preset '%s', using defaults", p)
	return DefaultConfig()
}

// Override carries partial caller overrides for single configuration
// fields. A nil field inherits the base value.
type Override struct {
	GlyphWidth  *float64
	GlyphHeight *float64
	Spacing     *float64
	Padding     *float64
	MaxWidth    *float64
	MaxHeight   *float64
}

// Resolve shallow-merges overrides onto c. Overrides win.
func (c Config) Resolve(over *Override) Config {
	if over == nil {
		return c
	}
	if over.GlyphWidth != nil {
		c.GlyphWidth = *over.GlyphWidth
	}
	if over.GlyphHeight != nil {
		c.GlyphHeight = *over.GlyphHeight
	}
	if over.Spacing != nil {
		c.Spacing = *over.Spacing
	}
	if over.Padding != nil {
		c.Padding = *over.Padding
	}
	if over.MaxWidth != nil {
		c.MaxWidth = *over.MaxWidth
	}
	if over.MaxHeight != nil {
		c.MaxHeight = *over.MaxHeight
	}
	return c
}

// ResolveConfig merges defaults, a preset and caller overrides into a
// complete configuration: defaults ⊕ preset ⊕ overrides, later fields
// winning. It never fails.
func ResolveConfig(p Preset, over *Override) Config {
	return FromPreset(p).Resolve(over)
}
