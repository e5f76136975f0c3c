package vpath

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Transform maps the point through t. Points that a projective transform
// sends to infinity have infinite or NaN coordinates.
func (pt Point) Transform(t Transform) Point {
	return t.Apply(pt)
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Homogeneous returns the point as (x, y, 1).
func (pt Point) Homogeneous() HPoint {
	return HPoint{pt.X, pt.Y, 1}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// HPoint is a point in homogeneous coordinates. It represents the affine
// point (X/W, Y/W). Points with W = 0 lie on the line at infinity.
type HPoint struct {
	X float64
	Y float64
	W float64
}

// HPt returns the homogeneous point (x, y, w).
func HPt(x, y, w float64) HPoint {
	return HPoint{X: x, Y: y, W: w}
}

func (p HPoint) String() string {
	return fmt.Sprintf("(%g, %g; %g)", p.X, p.Y, p.W)
}

// Project divides by W.
func (p HPoint) Project() Point {
	return Point{X: p.X / p.W, Y: p.Y / p.W}
}

// Add adds two homogeneous points component-wise.
func (p HPoint) Add(o HPoint) HPoint {
	return HPoint{p.X + o.X, p.Y + o.Y, p.W + o.W}
}

// Sub subtracts two homogeneous points component-wise.
func (p HPoint) Sub(o HPoint) HPoint {
	return HPoint{p.X - o.X, p.Y - o.Y, p.W - o.W}
}

// Mul scales all three components by f. The represented affine point doesn't
// change, but the weight of a control point does.
func (p HPoint) Mul(f float64) HPoint {
	return HPoint{p.X * f, p.Y * f, p.W * f}
}

func (p HPoint) IsInf() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsInf(p.W, 0)
}

func (p HPoint) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.W)
}
