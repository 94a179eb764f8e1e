package main

import (
	"iter"
	"math"

	"github.com/gogpu/gg"
)

// Koch returns the segments of the Koch curve from p0 to p1, subdivided
// from depth down to maxDepth, in order along the curve. A call with
// depth >= maxDepth yields the single segment (p0, p1).
//
// The sequence is computed lazily; stopping the iteration stops the recursion.
func Koch(p0, p1 Point, depth, maxDepth int) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		koch(p0, p1, depth, maxDepth, yield)
	}
}

func koch(p0, p1 Point, depth, maxDepth int, yield func(Segment) bool) bool {
	if depth >= maxDepth {
		return yield(Segment{P0: p0, P1: p1})
	}

	pa, pn, pb := kochApex(p0, p1)
	depth++
	return koch(p0, pa, depth, maxDepth, yield) &&
		koch(pa, pn, depth, maxDepth, yield) &&
		koch(pn, pb, depth, maxDepth, yield) &&
		koch(pb, p1, depth, maxDepth, yield)
}

// kochApex splits p0-p1 in thirds at pa and pb and returns the apex pn of
// the equilateral bump raised over the middle third. The bump lies along
// p1-p0 rotated by +90 degrees, which on a y-down canvas is to the right
// of the direction of travel.
func kochApex(p0, p1 Point) (pa, pn, pb Point) {
	pa = gg.Pt((2*p0.X+p1.X)/3, (2*p0.Y+p1.Y)/3)
	pb = gg.Pt((2*p1.X+p0.X)/3, (2*p1.Y+p0.Y)/3)
	pm := gg.Pt((p0.X+p1.X)/2, (p0.Y+p1.Y)/2)

	angle := math.Atan2(p1.Y-p0.Y, p1.X-p0.X) + math.Pi/2
	h := dist(pa, pb) * sin60
	pn = translate(pm, gg.Pt(h*math.Cos(angle), h*math.Sin(angle)))
	return pa, pn, pb
}

// Triangle returns the vertices of the equilateral triangle whose
// snowflake fits a size x size canvas with uniform padding.
// A and B form the top edge, C is the bottom vertex.
func Triangle(size int) (a, b, c Point) {
	l := float64(size)
	a = gg.Pt(0, 0)
	b = gg.Pt(l, 0)
	c = gg.Pt(l/2, l*sin60)

	// the snowflake is 4/3 taller than the triangle
	s := 1 / (sin60 * 4 / 3)
	pad := gg.Pt(((1/s)-1)/2*l, sin60*l/3)

	a = scale(translate(a, pad), s)
	b = scale(translate(b, pad), s)
	c = scale(translate(c, pad), s)
	return a, b, c
}

// Snowflake returns the segments of the three Koch curves over the
// edges B->A, C->B and A->C, forming a closed path.
func Snowflake(a, b, c Point, maxDepth int) iter.Seq[Segment] {
	edges := [...]Segment{{b, a}, {c, b}, {a, c}}
	return func(yield func(Segment) bool) {
		for _, e := range edges {
			if !koch(e.P0, e.P1, 0, maxDepth, yield) {
				return
			}
		}
	}
}

// SegmentCount returns the number of leaf segments of a snowflake of maxDepth.
func SegmentCount(maxDepth int) int {
	return 3 << (2 * maxDepth)
}
