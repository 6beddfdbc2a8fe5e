package svg

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conscript/glyphlayout/core/glyph"
	"github.com/conscript/glyphlayout/engine/layout"
)

func TestViewBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.svg")
	defer teardown()
	//
	b := layout.Bounds{Width: 72, Height: 28, MaxX: 72, MaxY: 28}
	assert.Equal(t, "0 0 72 28", ViewBox(b))
	b = layout.Bounds{Width: 50, Height: 30.5, MinX: -10, MinY: -2.5, MaxX: 40, MaxY: 28}
	assert.Equal(t, "-10 -2.5 50 30.5", ViewBox(b))
}

func TestDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.svg")
	defer teardown()
	//
	glyphs := []glyph.Renderable{
		glyph.FromRecord(glyph.Record{ID: 1, Name: "ka", Path: "M0 0L20 20"}, 0),
		glyph.Virtual("ə", 1),
	}
	res := layout.Linear(layout.LeftToRight).Calculate(glyphs, layout.DefaultConfig())
	doc := Document(res, Options{})
	assert.True(t, strings.HasPrefix(doc, "<svg "))
	assert.Contains(t, doc, `viewBox="0 0 50 28"`)
	assert.Contains(t, doc, `<path d="M0 0L20 20"`)
	assert.Contains(t, doc, "stroke-dasharray", "virtual glyphs render dashed")
	assert.Contains(t, doc, ">ə</text>", "the IPA character is rendered inside the placeholder")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</svg>"))
}

func TestDocumentEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.svg")
	defer teardown()
	//
	res := layout.Linear(layout.LeftToRight).Calculate(nil, layout.DefaultConfig())
	doc := Document(res, Options{})
	assert.Contains(t, doc, `viewBox="0 0 28 28"`, "empty layouts keep the empty-state box")
}

func TestDocumentEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.svg")
	defer teardown()
	//
	glyphs := []glyph.Renderable{glyph.Virtual("<", 0)}
	res := layout.Linear(layout.LeftToRight).Calculate(glyphs, layout.DefaultConfig())
	doc := Document(res, Options{})
	require.Contains(t, doc, "&lt;")
	assert.NotContains(t, doc, "><</text>")
}

func TestDocumentRotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.svg")
	defer teardown()
	//
	res := layout.Circular().Calculate([]glyph.Renderable{
		glyph.Virtual("a", 0), glyph.Virtual("b", 1), glyph.Virtual("c", 2),
	}, layout.DefaultConfig())
	doc := Document(res, Options{})
	assert.Contains(t, doc, "rotate(", "ring glyphs carry their rotation")
}
