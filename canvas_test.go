package main

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opaqueBlack = color.RGBA{A: 0xFF}

func pixels(t *testing.T, c *Canvas) *image.RGBA {
	t.Helper()
	img, err := c.Pixels()
	require.NoError(t, err)
	return img
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(32, gg.Black)
	defer c.Close()

	img := pixels(t, c)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	assert.Equal(t, opaqueBlack, img.RGBAAt(0, 0))
	assert.Equal(t, opaqueBlack, img.RGBAAt(31, 31))
}

func TestStrokeLine(t *testing.T) {
	c := NewCanvas(100, gg.Black)
	defer c.Close()

	require.NoError(t, c.StrokeLine(gg.Pt(0, 50.5), gg.Pt(100, 50.5), gg.Hex("008000"), 1))
	img := pixels(t, c)

	on := img.RGBAAt(50, 50)
	assert.Zero(t, on.R)
	assert.Zero(t, on.B)
	assert.NotZero(t, on.G)
	assert.Equal(t, opaqueBlack, img.RGBAAt(50, 10))
}

func TestStrokeSegments(t *testing.T) {
	c := NewCanvas(100, gg.Black)
	defer c.Close()

	segs := []Segment{
		{gg.Pt(10.5, 10.5), gg.Pt(90.5, 10.5)},
		{gg.Pt(90.5, 10.5), gg.Pt(90.5, 90.5)},
		// disjoint
		{gg.Pt(10.5, 50.5), gg.Pt(40.5, 50.5)},
	}
	n, err := c.StrokeSegments(slices.Values(segs), gg.Hex("008000"), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	img := pixels(t, c)
	assert.NotZero(t, img.RGBAAt(50, 10).G)
	assert.NotZero(t, img.RGBAAt(90, 50).G)
	assert.NotZero(t, img.RGBAAt(25, 50).G)
	// the gap between the subpaths is not drawn
	assert.Equal(t, opaqueBlack, img.RGBAAt(65, 50))
}

func TestStrokeSegmentsEmpty(t *testing.T) {
	c := NewCanvas(16, gg.Black)
	defer c.Close()

	n, err := c.StrokeSegments(slices.Values([]Segment(nil)), gg.White, 1)
	require.NoError(t, err)
	assert.Zero(t, n)
	img := pixels(t, c)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, opaqueBlack, img.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestStrokeSegmentsMatchesStrokeLine(t *testing.T) {
	a, b, c := Triangle(128)
	segs := slices.Collect(Snowflake(a, b, c, 3))
	col := gg.Hex("008000")

	batch := NewCanvas(128, gg.Black)
	defer batch.Close()
	n, err := batch.StrokeSegments(slices.Values(segs), col, 1)
	require.NoError(t, err)
	assert.Equal(t, len(segs), n)

	single := NewCanvas(128, gg.Black)
	defer single.Close()
	for _, s := range segs {
		require.NoError(t, single.StrokeLine(s.P0, s.P1, col, 1))
	}

	// no joins are added between consecutive segments
	assert.Equal(t, pixels(t, single).Pix, pixels(t, batch).Pix)
}

func TestPixelsIsACopy(t *testing.T) {
	c := NewCanvas(8, gg.Black)
	defer c.Close()

	img := pixels(t, c)
	require.NoError(t, c.StrokeLine(gg.Pt(0, 4.5), gg.Pt(8, 4.5), gg.White, 1))
	assert.Equal(t, opaqueBlack, img.RGBAAt(4, 4))
	assert.NotEqual(t, opaqueBlack, pixels(t, c).RGBAAt(4, 4))
}
