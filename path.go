package vpath

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Begin a new contour at the point.
	BeginKind PathElementKind = iota + 1
	// Draw a line from the current point to the point.
	LineToKind
	// Draw a quadratic Bézier using the current point and the two points.
	QuadToKind
	// Draw a conic using the current point, the homogeneous control point
	// and the end point.
	ConicToKind
	// Draw a cubic Bézier using the current point and the three points.
	CubicToKind
	// End the contour, leaving it open.
	EndOpenKind
	// End the contour, closing it.
	EndClosedKind
)

func (k PathElementKind) String() string {
	switch k {
	case BeginKind:
		return "Begin"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case ConicToKind:
		return "ConicTo"
	case CubicToKind:
		return "CubicTo"
	case EndOpenKind:
		return "EndOpen"
	case EndClosedKind:
		return "EndClosed"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is one recorded call of the [Sink] protocol. It doesn't store
// the leading coordinates of the call, which are implied by the current
// point.
//
// For [ConicToKind], W is the weight of the homogeneous control point
// (P0.X, P0.Y, W).
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
	W    float64
}

func (el PathElement) String() string {
	switch el.Kind {
	case BeginKind, LineToKind:
		return fmt.Sprintf("%s(%s)", el.Kind, el.P0)
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.P0, el.P1)
	case ConicToKind:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, HPt(el.P0.X, el.P0.Y, el.W), el.P1)
	case CubicToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	default:
		return el.Kind.String()
	}
}

// EndPoint returns the end point of the path element, or false if none exists.
// It doesn't exist for the kinds that end contours.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case BeginKind, LineToKind:
		return el.P0, true
	case QuadToKind, ConicToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A conic segment.
	ConicKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a path, including its start point.
// This type acts as a sort of tagged union of lines, [QuadBez],
// [RationalQuadBez] and [CubicBez].
type PathSegment struct {
	// We don't use an interface for PathSegment to avoid having to allocate
	// for path segments.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
	// W is the weight of P1 for ConicKind.
	W float64
}

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Conic returns the conic represented by this segment. Quadratic segments
// convert exactly.
func (seg PathSegment) Conic() RationalQuadBez {
	switch seg.Kind {
	case ConicKind:
		return RationalQuadBez{seg.P0, HPt(seg.P1.X, seg.P1.Y, seg.W), seg.P2}
	case QuadKind:
		return seg.Quad().Conic()
	case LineKind:
		return QuadBez{seg.P0, seg.P0.Midpoint(seg.P1), seg.P1}.Conic()
	default:
		return RationalQuadBez{}
	}
}

// Cubic converts seg to a cubic Bézier. This is valid for lines, quadratics
// and cubics.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind, ConicKind:
		return seg.P2
	default:
		return seg.P3
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.P0.Lerp(seg.P1, t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case ConicKind:
		return seg.Conic().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Emit pushes the segment to s.
func (seg PathSegment) Emit(s Sink) {
	switch seg.Kind {
	case LineKind:
		emitLine(s, seg.P0, seg.P1)
	case QuadKind:
		emitQuad(s, seg.Quad())
	case ConicKind:
		emitConic(s, seg.Conic())
	case CubicKind:
		emitCubic(s, seg.Cubic())
	}
}

// Path records path data and replays it. *Path implements [Sink], so any
// source or filter can record into it.
type Path []PathElement

var _ Sink = (*Path)(nil)

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

func (p *Path) BeginContour(x0, y0 float64) {
	p.Push(PathElement{Kind: BeginKind, P0: Pt(x0, y0)})
}

func (p *Path) EndOpenContour(x0, y0 float64) {
	p.Push(PathElement{Kind: EndOpenKind})
}

func (p *Path) EndClosedContour(x0, y0 float64) {
	p.Push(PathElement{Kind: EndClosedKind})
}

func (p *Path) LinearSegment(x0, y0, x1, y1 float64) {
	p.Push(PathElement{Kind: LineToKind, P0: Pt(x1, y1)})
}

func (p *Path) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	p.Push(PathElement{Kind: QuadToKind, P0: Pt(x1, y1), P1: Pt(x2, y2)})
}

func (p *Path) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	p.Push(PathElement{Kind: ConicToKind, P0: Pt(x1, y1), P1: Pt(x2, y2), W: w1})
}

func (p *Path) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	p.Push(PathElement{Kind: CubicToKind, P0: Pt(x1, y1), P1: Pt(x2, y2), P2: Pt(x3, y3)})
}

// Iterate replays the path into s, supplying the current point as the
// leading coordinates of every call.
func (p Path) Iterate(s Sink) {
	var start, cur Point
	for _, el := range p {
		switch el.Kind {
		case BeginKind:
			start, cur = el.P0, el.P0
			s.BeginContour(cur.X, cur.Y)
		case LineToKind:
			s.LinearSegment(cur.X, cur.Y, el.P0.X, el.P0.Y)
			cur = el.P0
		case QuadToKind:
			s.QuadraticSegment(cur.X, cur.Y, el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
			cur = el.P1
		case ConicToKind:
			s.RationalQuadraticSegment(cur.X, cur.Y, el.P0.X, el.P0.Y, el.W, el.P1.X, el.P1.Y)
			cur = el.P1
		case CubicToKind:
			s.CubicSegment(cur.X, cur.Y, el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
			cur = el.P2
		case EndOpenKind:
			s.EndOpenContour(cur.X, cur.Y)
		case EndClosedKind:
			s.EndClosedContour(cur.X, cur.Y)
			cur = start
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
}

// Segments returns an iterator over the segments of the path.
func (p Path) Segments() iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var cur Point
		for _, el := range p {
			var seg PathSegment
			switch el.Kind {
			case BeginKind:
				cur = el.P0
				continue
			case LineToKind:
				seg = PathSegment{Kind: LineKind, P0: cur, P1: el.P0}
			case QuadToKind:
				seg = PathSegment{Kind: QuadKind, P0: cur, P1: el.P0, P2: el.P1}
			case ConicToKind:
				seg = PathSegment{Kind: ConicKind, P0: cur, P1: el.P0, P2: el.P1, W: el.W}
			case CubicToKind:
				seg = PathSegment{Kind: CubicKind, P0: cur, P1: el.P0, P2: el.P1, P3: el.P2}
			default:
				continue
			}
			cur = seg.End()
			if !yield(seg) {
				return
			}
		}
	}
}

// Transform returns a new path with t applied, see [XForm].
func (p Path) Transform(t Transform) Path {
	var out Path
	p.Iterate(NewXForm(t, &out))
	return out
}

// BoundingBox returns the bounding box of the path's control polygons, see
// [BBox].
func (p Path) BoundingBox() Rect {
	var b BBox
	p.Iterate(&b)
	r, _ := b.Rect()
	return r
}

// SVG converts the path to a string of SVG path commands. Conics are written
// as elliptical arcs where possible, see [SVGWriter].
func (p Path) SVG(opts SVGOptions) string {
	return SVG(opts, p.Iterate)
}
