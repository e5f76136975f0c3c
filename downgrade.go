package vpath

import "math"

// Downgrade is a filter that replaces segments by simpler ones when that
// changes the geometry by no more than a tolerance: flat quadratics, conics
// and cubics become lines, conics with unit weight and cubics that are
// elevated quadratics become quadratics. Large conic arcs are split into two
// halves, which keeps every conic it emits on the short side of its control
// polygon.
type Downgrade[S Sink] struct {
	Forwarder[S]
	tol float64

	// Epsilon decides whether conic weights are one, and whether large arcs
	// are bounded.
	Epsilon Epsilon
}

// NewDowngrade returns the filter with tolerance tol, comparing weights with
// [DefaultEpsilon].
func NewDowngrade[S Sink](tol float64, sink S) *Downgrade[S] {
	return &Downgrade[S]{Forwarder: Forwarder[S]{sink}, tol: tol, Epsilon: DefaultEpsilon}
}

// within reports whether all of pts are within tol of the segment from p0
// to p1. If p0 and p1 coincide, every point has to be within tol of p0.
func within(tol float64, p0, p1 Point, pts ...Point) bool {
	d := p1.Sub(p0)
	d2 := d.Hypot2()
	tol2 := tol * tol
	for _, p := range pts {
		v := p.Sub(p0)
		if d2 <= tol2 {
			if v.Hypot2() > tol2 {
				return false
			}
			continue
		}
		n := v.Cross(d)
		if n*n > d2*tol2 {
			return false
		}
		// Also reject points beyond the ends, which make the curve
		// backtrack along the chord.
		if t := v.Dot(d) / d2; t < 0 || t > 1 {
			return false
		}
	}
	return true
}

func (f *Downgrade[S]) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	if within(f.tol, Pt(x0, y0), Pt(x2, y2), Pt(x1, y1)) {
		f.Downstream.LinearSegment(x0, y0, x2, y2)
		return
	}
	f.Downstream.QuadraticSegment(x0, y0, x1, y1, x2, y2)
}

func (f *Downgrade[S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	r := RationalQuadBez{Pt(x0, y0), HPt(x1, y1, w1), Pt(x2, y2)}
	f.conic(r)
}

func (f *Downgrade[S]) conic(r RationalQuadBez) {
	w := r.P1.W
	switch {
	case f.Epsilon.IsOne(w):
		p1 := r.P1.Project()
		f.QuadraticSegment(r.P0.X, r.P0.Y, p1.X, p1.Y, r.P2.X, r.P2.Y)
	case w < 0 && r.IsBounded(f.Epsilon):
		a, b := r.Subdivide()
		f.conic(a)
		f.conic(b)
	case w > 0 && within(f.tol, r.P0, r.P2, r.P1.Project()):
		// With a positive weight the curve lies inside its control
		// triangle.
		emitLine(f.Downstream, r.P0, r.P2)
	default:
		emitConic(f.Downstream, r)
	}
}

func (f *Downgrade[S]) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	c := CubicBez{Pt(x0, y0), Pt(x1, y1), Pt(x2, y2), Pt(x3, y3)}
	// Both ends of an elevated quadratic extrapolate to the same control
	// point.
	q0 := Point(Vec2(c.P1).Mul(3).Sub(Vec2(c.P0)).Mul(0.5))
	q1 := Point(Vec2(c.P2).Mul(3).Sub(Vec2(c.P3)).Mul(0.5))
	if q0.DistanceSquared(q1) <= f.tol*f.tol {
		q := q0.Midpoint(q1)
		f.QuadraticSegment(x0, y0, q.X, q.Y, x3, y3)
		return
	}
	if f.cubicIsFlat(c) {
		f.Downstream.LinearSegment(x0, y0, x3, y3)
		return
	}
	f.Downstream.CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3)
}

// cubicIsFlat reports whether all control points are within tol of the
// principal axis of the control polygon, and the inner control points don't
// extend past the ends along it.
func (f *Downgrade[S]) cubicIsFlat(c CubicBez) bool {
	pts := [4]Point{c.P0, c.P1, c.P2, c.P3}
	var mean Vec2
	for _, p := range pts {
		mean = mean.Add(Vec2(p))
	}
	mean = mean.Mul(0.25)
	var a, b, d float64
	for _, p := range pts {
		v := Vec2(p).Sub(mean)
		a += v.X * v.X
		b += v.X * v.Y
		d += v.Y * v.Y
	}
	u, _ := SVDUS(Linear{a, b, b, d}, f.Epsilon)
	axis := Vec(u.Cos, u.Sin)
	normal := axis.Perp()
	var t [4]float64
	for i, p := range pts {
		v := Vec2(p).Sub(mean)
		if math.Abs(v.Dot(normal)) > f.tol {
			return false
		}
		t[i] = v.Dot(axis)
	}
	lo, hi := min(t[0], t[3]), max(t[0], t[3])
	return t[1] >= lo-f.tol && t[1] <= hi+f.tol && t[2] >= lo-f.tol && t[2] <= hi+f.tol
}
