package main

import (
	"fmt"
	"image"
	"iter"

	"github.com/gogpu/gg"
)

// Canvas is a square pixel buffer that segments are stroked on.
// A canvas is drawn once and then handed over for display.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas returns a size x size canvas filled with bg.
func NewCanvas(size int, bg gg.RGBA) *Canvas {
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(bg)
	return &Canvas{dc: dc}
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// StrokeLine draws the line p0-p1.
func (c *Canvas) StrokeLine(p0, p1 Point, col gg.RGBA, width float64) error {
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke line: %w", err)
	}
	return nil
}

// StrokeSegments strokes every segment of seq as its own line and returns
// how many were drawn.
func (c *Canvas) StrokeSegments(seq iter.Seq[Segment], col gg.RGBA, width float64) (int, error) {
	n := 0
	for s := range seq {
		if err := c.StrokeLine(s.P0, s.P1, col, width); err != nil {
			return n, fmt.Errorf("segment %d: %w", n, err)
		}
		n++
	}
	return n, nil
}

// Pixels returns a copy of the pixel buffer of the canvas.
func (c *Canvas) Pixels() (*image.RGBA, error) {
	if err := c.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("pixels: %w", err)
	}
	// Image copies the pixmap into a new *image.RGBA
	return c.dc.Image().(*image.RGBA), nil
}
