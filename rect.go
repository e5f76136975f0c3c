package vpath

import (
	"fmt"
	"math"
)

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X0, r.Y0, r.X1, r.Y1)
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies in the rectangle, including its edges.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Emit pushes the rectangle to s as a closed contour of four lines, starting
// at (X0, Y0) and going through (X1, Y0) first.
func (r Rect) Emit(s Sink) {
	s.BeginContour(r.X0, r.Y0)
	s.LinearSegment(r.X0, r.Y0, r.X1, r.Y0)
	s.LinearSegment(r.X1, r.Y0, r.X1, r.Y1)
	s.LinearSegment(r.X1, r.Y1, r.X0, r.Y1)
	s.LinearSegment(r.X0, r.Y1, r.X0, r.Y0)
	s.EndClosedContour(r.X0, r.Y0)
}

// BBox is a sink that accumulates a bounding box of the path data it
// receives. The box encloses the control polygons of all segments, which
// encloses the curves too, so it isn't always tight.
//
// Conic arcs whose control point doesn't lie between their tangents are
// split until it does. Conics through infinity only contribute their end
// points.
type BBox struct {
	// Eps decides whether a conic is bounded. The zero value selects
	// DefaultEpsilon.
	Eps   Epsilon
	box   Rect
	valid bool
}

var _ Sink = (*BBox)(nil)

// Rect returns the accumulated box, and false if no path data has been
// received yet.
func (b *BBox) Rect() (Rect, bool) {
	return b.box, b.valid
}

func (b *BBox) add(pts ...Point) {
	for _, pt := range pts {
		if !b.valid {
			b.box = Rect{pt.X, pt.Y, pt.X, pt.Y}
			b.valid = true
			continue
		}
		b.box = b.box.UnionPoint(pt)
	}
}

func (b *BBox) BeginContour(x0, y0 float64) { b.add(Pt(x0, y0)) }
func (b *BBox) EndOpenContour(x0, y0 float64) {}
func (b *BBox) EndClosedContour(x0, y0 float64) {}
func (b *BBox) LinearSegment(x0, y0, x1, y1 float64) { b.add(Pt(x1, y1)) }

func (b *BBox) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	b.add(Pt(x1, y1), Pt(x2, y2))
}

func (b *BBox) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	b.conic(RationalQuadBez{Pt(x0, y0), HPt(x1, y1, w1), Pt(x2, y2)})
}

func (b *BBox) conic(r RationalQuadBez) {
	switch {
	case !r.IsBounded(b.Eps):
		b.add(r.P0, r.P2)
	case r.P1.W <= 0:
		l, h := r.Subdivide()
		b.conic(l)
		b.conic(h)
	default:
		b.add(r.P0, r.P1.Project(), r.P2)
	}
}

func (b *BBox) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	b.add(Pt(x1, y1), Pt(x2, y2), Pt(x3, y3))
}
