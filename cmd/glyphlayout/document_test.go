package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conscript/glyphlayout/backend/svg"
	"github.com/conscript/glyphlayout/engine/layout"
)

const samplePhrase = `
strategy = "composed-block"
preset = "compact"

[config]
padding = 4.0

[system]
glyph-direction = "rtl"
word-order = "ltr"
line-progression = "ttb"
baseline = "center"
wrap = true
word-boundaries = [2]

[[glyphs]]
id = 1
name = "ka"
path = "M0 0 L16 16"

[[glyphs]]
id = 2
name = "tu"
path = "M16 0 L0 16"

[[glyphs]]
id = 3
name = "space"

[[glyphs]]
ipa = "ə̃"
`

func TestParseDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	doc, err := parseDocument([]byte(samplePhrase))
	require.NoError(t, err)
	assert.Equal(t, "composed-block", doc.Strategy)
	assert.Equal(t, "compact", doc.Preset)
	require.NotNil(t, doc.System)
	assert.Equal(t, []int{2}, doc.System.WordBoundaries)
	require.Len(t, doc.Glyphs, 4)
}

func TestDocumentEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	doc, err := parseDocument([]byte(samplePhrase))
	require.NoError(t, err)
	entries := doc.entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "ə̃", entries[3].Char, "IPA text splits into user-perceived characters")
}

func TestDocumentConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	doc, err := parseDocument([]byte(samplePhrase))
	require.NoError(t, err)
	cfg := doc.config()
	assert.Equal(t, 16.0, cfg.GlyphWidth, "preset supplies the glyph box")
	assert.Equal(t, 4.0, cfg.Padding, "the config section overrides the preset")
}

func TestDocumentSystem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	doc, err := parseDocument([]byte(samplePhrase))
	require.NoError(t, err)
	sys := doc.system()
	assert.Equal(t, layout.RightToLeft, sys.GlyphDirection)
	assert.Equal(t, layout.LeftToRight, sys.WordOrder)
	assert.Equal(t, layout.TopToBottom, sys.LineProgression)
	assert.Equal(t, layout.AlignCenter, sys.Baseline)
	assert.Equal(t, layout.Wrap, sys.Wrap)
}

func TestDocumentLayoutToSVG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	doc, err := parseDocument([]byte(samplePhrase))
	require.NoError(t, err)
	res := doc.layout()
	require.Len(t, res.Positions, 4)
	out := svg.Document(res, svg.Options{})
	assert.Contains(t, out, "stroke-dasharray", "the IPA placeholder renders dashed")
	assert.Contains(t, out, `<path d="M0 0 L16 16"`)
}

func TestParseDocumentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	doc, err := parseDocument([]byte("[[glyphs]]\nid = 1\nname = \"ka\"\n"))
	require.NoError(t, err)
	assert.Equal(t, layout.NameComposedBlock, doc.Strategy)
	assert.Nil(t, doc.System)
	res := doc.layout()
	assert.Len(t, res.Positions, 1)
}

func TestParseDocumentRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	_, err := parseDocument([]byte("= not toml ="))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "phrase document"))
}
