package main

import (
	"image"

	"github.com/gogpu/gg"
)

// sin60 is the height of an equilateral triangle of side 1.
const sin60 = 0.8660254037844386

// Point is a position on the canvas. Points are values and are never mutated.
type Point = gg.Point

// Segment is a line from P0 to P1.
type Segment struct {
	P0, P1 Point
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return dist(s.P0, s.P1)
}

func translate(p, delta Point) Point {
	return p.Add(delta)
}

func scale(p Point, s float64) Point {
	return p.Mul(s)
}

func dist(p0, p1 Point) float64 {
	return p0.Distance(p1)
}

// center moves sr to the middle of dr. If sr is larger than dr in either
// direction, dr is returned.
func center(dr, sr image.Rectangle) image.Rectangle {
	slack := dr.Size().Sub(sr.Size())
	if slack.X < 0 || slack.Y < 0 {
		return dr
	}
	return sr.Sub(sr.Min).Add(dr.Min).Add(slack.Div(2))
}

// bestFit scales sr to fit in dr keeping the aspect ratio and centers it.
// Sources smaller than dr are scaled up.
func bestFit(dr, sr image.Rectangle) image.Rectangle {
	if sr.Empty() || dr.Empty() {
		return dr
	}
	var r image.Rectangle
	f := max(float32(sr.Dy())/float32(dr.Dy()), float32(sr.Dx())/float32(dr.Dx()))
	r.Max.X = int(float32(sr.Dx()) / f)
	r.Max.Y = int(float32(sr.Dy()) / f)
	return center(dr, r)
}
