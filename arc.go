package vpath

import (
	"fmt"
	"math"
)

// ArcKind is the kind of geometry a conic segment reduces to.
type ArcKind int

const (
	// The conic degenerated to its chord.
	ArcLine ArcKind = iota
	// The conic is a parabola, i.e. an ordinary quadratic Bézier.
	ArcQuadratic
	// The conic is an elliptical arc.
	ArcElliptical
	// The conic is a hyperbola, which has no elliptical arc form.
	ArcHyperbolic
)

func (k ArcKind) String() string {
	switch k {
	case ArcLine:
		return "line"
	case ArcQuadratic:
		return "quadratic"
	case ArcElliptical:
		return "elliptical"
	case ArcHyperbolic:
		return "hyperbolic"
	default:
		return fmt.Sprintf("ArcKind(%d)", int(k))
	}
}

// EllipticalArc describes an elliptical arc in SVG's endpoint
// parameterization.
type EllipticalArc struct {
	P0       Point
	RX, RY   float64
	Rotation float64 // of the x axis, in degrees
	LargeArc bool
	Sweep    bool
	P2       Point
}

// ArcConversion is the result of [ConicToArc].
type ArcConversion struct {
	Kind ArcKind
	// P0 and P2 are the end points, for all kinds.
	P0, P2 Point
	// P1 is the control point of the quadratic, for ArcQuadratic.
	P1 Point
	// Arc is set for ArcElliptical.
	Arc EllipticalArc
	// W is the weight of the conic.
	W float64
}

// Angle returns the angle, in radians, that an elliptical arc subtends on
// the unit circle it is the affine image of. It is 2·acos(w), and in (0, 2π).
func (c ArcConversion) Angle() float64 {
	return 2 * math.Acos(max(-1, min(1, c.W)))
}

// ConicToArc converts a conic segment into an exactly equivalent line,
// quadratic or elliptical arc.
//
// Conics with a weight of 1 are parabolas and become quadratics, or lines if
// all three control points coincide. A weight of −1 is the parabola that
// passes through infinity on its way to the end point; like other unbounded
// conics it is replaced by its chord. Otherwise the conic is the image of the
// unit circle under an affine map, which the singular value decomposition
// splits into the radii and rotation of the ellipse. Arcs with a vanishing
// radius become lines. Hyperbolas are reported with [ArcHyperbolic] and need
// to be approximated instead.
func ConicToArc(r RationalQuadBez, eps Epsilon) ArcConversion {
	x0, y0 := r.P0.X, r.P0.Y
	x1, y1, w1 := r.P1.X, r.P1.Y, r.P1.W
	x2, y2 := r.P2.X, r.P2.Y
	out := ArcConversion{P0: r.P0, P2: r.P2, W: w1}

	s2 := 1 - w1*w1
	if eps.IsZero(s2) {
		if w1 < 0 {
			out.Kind = ArcLine
			return out
		}
		p1 := r.P1.Project()
		if eps.IsEqualPoints(r.P0, p1) && eps.IsEqualPoints(p1, r.P2) {
			out.Kind = ArcLine
			return out
		}
		out.Kind = ArcQuadratic
		out.P1 = p1
		return out
	}
	if s2 < 0 {
		out.Kind = ArcHyperbolic
		return out
	}
	s := math.Sqrt(s2)

	// The linear part of the map that takes the unit circle to the conic.
	l := Linear{
		2*x1 - w1*(x0+x2), s * (x2 - x0),
		2*y1 - w1*(y0+y2), s * (y2 - y0),
	}
	u, sc := SVDUS(l, eps)
	rx := sc.SX / (2 * s2)
	ry := sc.SY / (2 * s2)
	if eps.IsZero(rx) || eps.IsZero(ry) {
		out.Kind = ArcLine
		return out
	}

	// Orientation of the control triangle, from the determinant of the
	// homogeneous control points.
	det := Projective{
		x0, y0, 1,
		x1, y1, w1,
		x2, y2, 1,
	}.Determinant()

	out.Kind = ArcElliptical
	out.Arc = EllipticalArc{
		P0:       r.P0,
		RX:       rx,
		RY:       ry,
		Rotation: u.Angle() * (180 / math.Pi),
		LargeArc: w1 < 0,
		Sweep:    det > 0,
		P2:       r.P2,
	}
	return out
}

// ArcToConic converts an SVG elliptical arc, starting at the current point
// p0, into a conic segment. If a radius or the distance between the end
// points vanishes, ArcToConic returns false and the arc should be replaced
// by a line.
//
// Radii that are too small to connect the end points are scaled up, as SVG
// requires.
func ArcToConic(p0 Point, rx, ry, rot float64, largeArc, sweep bool, p2 Point, eps Epsilon) (RationalQuadBez, bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if eps.IsZero(rx) || eps.IsZero(ry) {
		return RationalQuadBez{}, false
	}
	// Solve the problem where the ellipse is the unit circle and map the
	// result back.
	rotation := RotateDeg(rot)
	toCircle := Scale(1/rx, 1/ry).Linear().Mul(rotation.Invert().Linear())
	fromCircle := rotation.Linear().Mul(Scale(rx, ry).Linear())
	q0 := toCircle.Apply(p0)
	q2 := toCircle.Apply(p2)
	n := q2.Sub(q0).Perp()
	el2 := n.Hypot2()
	if eps.IsZero(el2) {
		return RationalQuadBez{}, false
	}
	el := math.Sqrt(el2)
	mid := q0.Midpoint(q2)

	// The center, the midpoint of the chord and an end point form a right
	// triangle whose hypotenuse is the radius.
	radius, offset := 1.0, 0.0
	if el2 > 4 {
		radius = 0.5 * el
	} else {
		offset = 0.5 * math.Sqrt(4-el2)
	}
	// The flags pick one of the two candidate circles.
	sign := -1.0
	if largeArc != sweep {
		sign = 1.0
	}
	center := mid.Translate(n.Mul(sign * offset / el))
	// The weight is the cosine of half the angle of the smaller arc.
	w1 := math.Abs(q0.Sub(center).Dot(n) / el / radius)
	dir := n.Mul(-sign * radius / el)
	q1 := HPt(dir.X+center.X*w1, dir.Y+center.Y*w1, w1)
	q1 = fromCircle.ApplyH(q1)
	if largeArc {
		// The complementary arc has the negated control point.
		q1 = q1.Mul(-1)
	}
	return RationalQuadBez{p0, q1, p2}, true
}

// ConicToArcs is a filter that replaces conic segments with lines,
// quadratics and elliptical arcs, for consumers that understand arcs but not
// conics. Hyperbolic segments are approximated by cubics.
type ConicToArcs[S ArcSink] struct {
	Forwarder[S]
	opts     ApproxOptions
	reporter ApproximationReporter
}

// NewConicToArcs returns the filter. opts controls the approximation of
// hyperbolic segments and provides the epsilon for the conversion itself.
func NewConicToArcs[S ArcSink](opts ApproxOptions, sink S) *ConicToArcs[S] {
	return &ConicToArcs[S]{
		Forwarder: Forwarder[S]{sink},
		opts:      opts.withDefaults(),
		reporter:  ForwardIf[ApproximationReporter](sink, Null{}),
	}
}

func (f *ConicToArcs[S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	r := RationalQuadBez{Pt(x0, y0), HPt(x1, y1, w1), Pt(x2, y2)}
	conv := ConicToArc(r, f.opts.Epsilon)
	switch conv.Kind {
	case ArcLine:
		f.Downstream.LinearSegment(x0, y0, x2, y2)
	case ArcQuadratic:
		f.Downstream.QuadraticSegment(x0, y0, conv.P1.X, conv.P1.Y, x2, y2)
	case ArcElliptical:
		a := conv.Arc
		f.Downstream.EllipticalArcSegment(x0, y0, a.RX, a.RY, a.Rotation, a.LargeArc, a.Sweep, x2, y2)
	case ArcHyperbolic:
		f.reporter.ConicApproximated(ApproximateConic(r, f.opts, f.Downstream))
	default:
		panic(fmt.Sprintf("unhandled case %v", conv.Kind))
	}
}
