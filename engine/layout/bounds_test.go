package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEmptyBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	b := EmptyBounds(DefaultConfig())
	assert.Equal(t, Bounds{Width: 28, Height: 28, MaxX: 28, MaxY: 28}, b)
	assert.Equal(t, b.Width, b.MaxX-b.MinX)
	assert.Equal(t, b.Height, b.MaxY-b.MinY)
}

func TestBoundsOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	cfg := DefaultConfig()
	positions := []PositionedGlyph{
		{X: 4, Y: 4, Width: 20, Height: 20},
		{X: 48, Y: 4, Width: 20, Height: 20},
	}
	b := BoundsOf(positions, cfg)
	assert.Equal(t, 0.0, b.MinX)
	assert.Equal(t, 0.0, b.MinY)
	assert.Equal(t, 72.0, b.MaxX)
	assert.Equal(t, 28.0, b.MaxY)
	assert.Equal(t, 72.0, b.Width)
	assert.Equal(t, 28.0, b.Height)
	for _, pos := range positions {
		assert.True(t, b.Contains(pos))
	}
}

func TestBoundsContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphlayout.layout")
	defer teardown()
	//
	b := Bounds{Width: 28, Height: 28, MaxX: 28, MaxY: 28}
	assert.True(t, b.Contains(PositionedGlyph{X: 4, Y: 4, Width: 20, Height: 20}))
	assert.False(t, b.Contains(PositionedGlyph{X: 20, Y: 4, Width: 20, Height: 20}))
	assert.False(t, b.Contains(PositionedGlyph{X: -1, Y: 4, Width: 20, Height: 20}))
}
