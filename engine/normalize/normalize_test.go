package normalize

import (
	"testing"

	"github.com/conscript/glyphlayout/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookups() Context {
	graphemes := map[int64]GraphemeRecord{
		12: {ID: 12, Name: "th", Glyphs: []glyph.Record{
			{ID: 1, Name: "t", Path: "M0 0"},
			{ID: 2, Name: "h", Path: "M1 1"},
		}},
	}
	glyphs := map[int64]glyph.Record{
		1: {ID: 1, Name: "t", Path: "M0 0"},
		2: {ID: 2, Name: "h", Path: "M1 1"},
		// a stored placeholder under a negative id
		-9: {ID: -9, Name: "ipa:ŋ", IPA: "ŋ"},
	}
	return Context{
		GlyphLookup: func(id int64) (glyph.Record, bool) {
			rec, ok := glyphs[id]
			return rec, ok
		},
		GraphemeLookup: func(id int64) (GraphemeRecord, bool) {
			rec, ok := graphemes[id]
			return rec, ok
		},
	}
}

func TestSpellingEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	// A grapheme reference expands to all of its glyphs; an IPA entry
	// synthesizes one virtual glyph.
	entries := []SpellingEntry{
		{Kind: GraphemeEntry, GraphemeID: 12},
		{Kind: IPAEntry, Char: "ə"},
	}
	out := FromSpelling(entries, lookups())
	require.Len(t, out, 3)
	assert.False(t, out[0].IsVirtual)
	assert.False(t, out[1].IsVirtual)
	assert.True(t, out[2].IsVirtual)
	assert.Equal(t, "ə", out[2].IPAChar)
	for i, g := range out {
		assert.Equal(t, i, g.SourceIndex, "source index must be monotonic over the output")
	}
}

func TestSpellingInlineFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	inline := GraphemeRecord{ID: 99, Name: "x", Glyphs: []glyph.Record{{ID: 5, Name: "x"}}}
	entries := []SpellingEntry{{Kind: GraphemeEntry, GraphemeID: 99, Grapheme: &inline}}
	out := FromSpelling(entries, lookups()) // lookup has no grapheme 99
	require.Len(t, out, 1)
	assert.Equal(t, int64(5), out[0].ID)
}

func TestSpellingUnknownGraphemeDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	entries := []SpellingEntry{
		{Kind: GraphemeEntry, GraphemeID: 404},
		{Kind: IPAEntry, Char: "a"},
	}
	out := FromSpelling(entries, lookups())
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].SourceIndex)
}

func TestGlyphRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	recs := []glyph.Record{{ID: 1, Name: "t"}, {ID: 2, Name: "h"}}
	out := FromRecords(recs)
	require.Len(t, out, 2)
	assert.False(t, out[0].IsVirtual)
	assert.Equal(t, int64(2), out[1].ID)
	assert.Equal(t, 1, out[1].SourceIndex)
}

func TestGraphemeRecordsFlattened(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	recs := []GraphemeRecord{
		{ID: 12, Glyphs: []glyph.Record{{ID: 1}, {ID: 2}}},
		{ID: 13, Glyphs: []glyph.Record{{ID: 3}}},
	}
	out := FromGraphemes(recs)
	require.Len(t, out, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, 2, out[2].SourceIndex)
}

func TestIDSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	out := FromIDs([]int64{1, 404, -9, 2}, lookups())
	require.Len(t, out, 3, "unresolved ids are dropped, not fatal")
	assert.Equal(t, int64(1), out[0].ID)
	assert.True(t, out[1].IsVirtual, "stored placeholders resolve through the same lookup")
	assert.Equal(t, "ŋ", out[1].IPAChar)
	assert.Equal(t, int64(2), out[2].ID)
	assert.Equal(t, []int{0, 1, 2}, []int{out[0].SourceIndex, out[1].SourceIndex, out[2].SourceIndex})
}

func TestIDSequenceWithoutLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	out := FromIDs([]int64{1, 2}, Context{})
	assert.Empty(t, out, "missing lookup degrades to empty output")
	assert.NotNil(t, out)
}

func TestShapeDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	ctx := lookups()
	assert.Len(t, Glyphs([]SpellingEntry{{Kind: IPAEntry, Char: "a"}}, ctx), 1)
	assert.Len(t, Glyphs([]glyph.Record{{ID: 1}}, ctx), 1)
	assert.Len(t, Glyphs([]GraphemeRecord{{ID: 12, Glyphs: []glyph.Record{{ID: 1}}}}, ctx), 1)
	assert.Len(t, Glyphs([]int64{1}, ctx), 1)
	assert.Empty(t, Glyphs(nil, ctx))
	assert.Empty(t, Glyphs("not a glyph sequence", ctx), "unclassifiable input is rejected, not a panic")
}

func TestFromIPA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.normalize")
	defer teardown()
	//
	out := FromIPA("nə̃t")
	require.Len(t, out, 3)
	for _, g := range out {
		assert.True(t, g.IsVirtual)
	}
	assert.Equal(t, "ə̃", out[1].IPAChar)
}
