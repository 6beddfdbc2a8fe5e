package normalize

import (
	"github.com/conscript/glyphlayout/core/glyph"
)

// GraphemeRecord is a stored grapheme: a named unit composed of one or more
// glyphs, in stored order.
type GraphemeRecord struct {
	ID     int64
	Name   string
	Glyphs []glyph.Record
}

// EntryKind discriminates spelling-display entries.
type EntryKind int

// Spelling entry kinds.
const (
	GraphemeEntry EntryKind = iota // a reference to a stored grapheme
	IPAEntry                       // a raw IPA character without a mapping
)

// SpellingEntry is one element of a spelling-display sequence. Grapheme
// entries reference a stored grapheme by id and may carry an inline copy of
// the record for callers that resolved it up front; IPA entries carry the
// character itself.
type SpellingEntry struct {
	Kind       EntryKind
	GraphemeID int64
	Grapheme   *GraphemeRecord
	Char       string
}

// Context supplies the lookup collaborators of the glyph database. Either
// lookup may be nil; resolution then falls back to inline payloads where
// present, or degrades with a diagnostic.
type Context struct {
	GlyphLookup    func(id int64) (glyph.Record, bool)
	GraphemeLookup func(id int64) (GraphemeRecord, bool)
}

// Glyphs converts any of the four supported input shapes into a uniform
// glyph sequence. The shape is detected from the input's type; an
// unclassifiable input yields empty output with a diagnostic, never an
// error.
func Glyphs(input interface{}, ctx Context) []glyph.Renderable {
	switch in := input.(type) {
	case nil:
		return nil
	case []SpellingEntry:
		return FromSpelling(in, ctx)
	case []glyph.Record:
		return FromRecords(in)
	case []GraphemeRecord:
		return FromGraphemes(in)
	case []int64:
		return FromIDs(in, ctx)
	}
	tracer().Errorf("cannot detect glyph input shape %T, input dropped", input)
	return nil
}

// FromSpelling expands spelling-display entries. Grapheme entries resolve
// through the context's grapheme lookup, falling back to an inline record,
// and contribute all of the grapheme's glyphs in stored order. IPA entries
// synthesize one virtual glyph each.
func FromSpelling(entries []SpellingEntry, ctx Context) []glyph.Renderable {
	out := make([]glyph.Renderable, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case GraphemeEntry:
			rec, ok := resolveGrapheme(e, ctx)
			if !ok {
				tracer().Infof("spelling entry references unknown grapheme %d, dropped", e.GraphemeID)
				continue
			}
			for _, gr := range rec.Glyphs {
				out = append(out, glyph.FromRecord(gr, len(out)))
			}
		case IPAEntry:
			out = append(out, glyph.Virtual(e.Char, len(out)))
		}
	}
	return out
}

func resolveGrapheme(e SpellingEntry, ctx Context) (GraphemeRecord, bool) {
	if ctx.GraphemeLookup != nil {
		if rec, ok := ctx.GraphemeLookup(e.GraphemeID); ok {
			return rec, true
		}
	}
	if e.Grapheme != nil {
		return *e.Grapheme, true
	}
	return GraphemeRecord{}, false
}

// FromRecords maps stored glyph records 1:1 onto renderable glyphs.
func FromRecords(recs []glyph.Record) []glyph.Renderable {
	out := make([]glyph.Renderable, 0, len(recs))
	for _, rec := range recs {
		out = append(out, glyph.FromRecord(rec, len(out)))
	}
	return out
}

// FromGraphemes flattens composite grapheme records: every glyph of every
// grapheme, in order, concatenated.
func FromGraphemes(recs []GraphemeRecord) []glyph.Renderable {
	var out []glyph.Renderable
	for _, rec := range recs {
		for _, gr := range rec.Glyphs {
			out = append(out, glyph.FromRecord(gr, len(out)))
		}
	}
	return out
}

// FromIDs resolves a sequence of numeric glyph ids through the context's
// glyph lookup. Unresolved ids are dropped with a diagnostic. Stored
// placeholder entries (negative ids with an IPA character) resolve through
// the same lookup as real glyphs. Without a lookup there is nothing to
// resolve against, so the result is empty.
func FromIDs(ids []int64, ctx Context) []glyph.Renderable {
	if ctx.GlyphLookup == nil {
		tracer().Errorf("glyph id input without a glyph lookup, returning empty sequence")
		return []glyph.Renderable{}
	}
	out := make([]glyph.Renderable, 0, len(ids))
	for _, id := range ids {
		rec, ok := ctx.GlyphLookup(id)
		if !ok {
			tracer().Infof("glyph id %d not found, dropped", id)
			continue
		}
		out = append(out, glyph.FromRecord(rec, len(out)))
	}
	return out
}

// FromIPA lays a run of raw IPA text into virtual glyphs, one per
// user-perceived character.
func FromIPA(text string) []glyph.Renderable {
	chars := glyph.SplitIPA(text)
	out := make([]glyph.Renderable, 0, len(chars))
	for _, c := range chars {
		out = append(out, glyph.Virtual(c, len(out)))
	}
	return out
}
