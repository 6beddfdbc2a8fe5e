package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/conscript/glyphlayout/core/glyph"
	"github.com/conscript/glyphlayout/engine/layout"
	"github.com/conscript/glyphlayout/engine/normalize"
)

// phraseDoc is the on-disk TOML schema of a phrase to lay out.
//
//	strategy = "composed-block"
//	preset = "manuscript"
//
//	[config]
//	glyph-width = 24.0
//
//	[system]
//	glyph-direction = "rtl"
//	word-order = "ltr"
//	line-progression = "ttb"
//	baseline = "center"
//	wrap = true
//	word-boundaries = [3]
//
//	[[glyphs]]
//	id = 12
//	name = "ka"
//	path = "M0 0 L20 20"
//
//	[[glyphs]]
//	ipa = "ə"
type phraseDoc struct {
	Strategy string         `toml:"strategy"`
	Preset   string         `toml:"preset"`
	Config   configSection  `toml:"config"`
	System   *systemSection `toml:"system"`
	Glyphs   []glyphEntry   `toml:"glyphs"`
}

type configSection struct {
	GlyphWidth  *float64 `toml:"glyph-width"`
	GlyphHeight *float64 `toml:"glyph-height"`
	Spacing     *float64 `toml:"spacing"`
	Padding     *float64 `toml:"padding"`
	MaxWidth    *float64 `toml:"max-width"`
	MaxHeight   *float64 `toml:"max-height"`
}

type systemSection struct {
	GlyphDirection  string `toml:"glyph-direction"`
	WordOrder       string `toml:"word-order"`
	LineProgression string `toml:"line-progression"`
	Baseline        string `toml:"baseline"`
	Wrap            bool   `toml:"wrap"`
	WordBoundaries  []int  `toml:"word-boundaries"`
	LineBreaks      []int  `toml:"line-breaks"`
}

type glyphEntry struct {
	ID   int64  `toml:"id"`
	Name string `toml:"name"`
	Path string `toml:"path"`
	IPA  string `toml:"ipa"`
}

func loadDocument(path string) (*phraseDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseDocument(data)
}

func parseDocument(data []byte) (*phraseDoc, error) {
	var doc phraseDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse phrase document: %w", err)
	}
	if doc.Strategy == "" {
		doc.Strategy = layout.NameComposedBlock
	}
	return &doc, nil
}

// entries converts the document's glyph list into spelling entries. Stored
// glyphs travel inline as single-glyph graphemes; IPA text expands into one
// entry per user-perceived character.
func (doc *phraseDoc) entries() []normalize.SpellingEntry {
	var entries []normalize.SpellingEntry
	for _, e := range doc.Glyphs {
		if e.IPA != "" {
			for _, char := range glyph.SplitIPA(e.IPA) {
				entries = append(entries, normalize.SpellingEntry{
					Kind: normalize.IPAEntry,
					Char: char,
				})
			}
			continue
		}
		entries = append(entries, normalize.SpellingEntry{
			Kind:       normalize.GraphemeEntry,
			GraphemeID: e.ID,
			Grapheme: &normalize.GraphemeRecord{
				ID:     e.ID,
				Glyphs: []glyph.Record{{ID: e.ID, Name: e.Name, Path: e.Path}},
			},
		})
	}
	return entries
}

func (doc *phraseDoc) config() layout.Config {
	over := &layout.Override{
		GlyphWidth:  doc.Config.GlyphWidth,
		GlyphHeight: doc.Config.GlyphHeight,
		Spacing:     doc.Config.Spacing,
		Padding:     doc.Config.Padding,
		MaxWidth:    doc.Config.MaxWidth,
		MaxHeight:   doc.Config.MaxHeight,
	}
	return layout.ResolveConfig(layout.Preset(doc.Preset), over)
}

func (doc *phraseDoc) system() layout.System {
	sys := layout.DefaultSystem()
	if doc.System == nil {
		return sys
	}
	sys.GlyphDirection = layout.ParseDirection(doc.System.GlyphDirection)
	sys.WordOrder = layout.ParseDirection(doc.System.WordOrder)
	if doc.System.LineProgression != "" {
		sys.LineProgression = layout.ParseDirection(doc.System.LineProgression)
	} else {
		sys.LineProgression = layout.TopToBottom
	}
	sys.Baseline = layout.ParseAlignment(doc.System.Baseline)
	if doc.System.Wrap {
		sys.Wrap = layout.Wrap
	} else {
		sys.Wrap = layout.NoWrap
	}
	return sys
}

// layout normalizes the document's glyphs and runs the selected strategy.
// A [system] block selects the composed block strategy configured with the
// document's boundary sets; otherwise the strategy is resolved by name.
func (doc *phraseDoc) layout() layout.Result {
	glyphs := normalize.FromSpelling(doc.entries(), normalize.Context{})
	cfg := doc.config()
	if doc.System != nil || doc.Strategy == layout.NameComposedBlock {
		strat := layout.NewComposedBlock(doc.system(),
			layout.WithWordBoundaries(boundaries(doc)...),
			layout.WithLineBreaks(breaks(doc)...))
		return strat.Calculate(glyphs, cfg)
	}
	return layout.LayoutGlyphs(glyphs, doc.Strategy, cfg)
}

func boundaries(doc *phraseDoc) []int {
	if doc.System == nil {
		return nil
	}
	return doc.System.WordBoundaries
}

func breaks(doc *phraseDoc) []int {
	if doc.System == nil {
		return nil
	}
	return doc.System.LineBreaks
}
