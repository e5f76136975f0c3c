package vpath

import "math"

// RationalQuadBez is a rational quadratic Bézier segment, also called a
// conic segment, in canonical form: the end points carry unit weight, and the
// interior control point P1 is given in homogeneous coordinates. Its affine
// position is P1.Project().
//
// For a conic that is the image of a circular arc, P1.W is the cosine of half
// the angle the arc subtends. A weight in (−1, 1) describes an elliptical arc,
// a negative weight selecting the larger of the two arcs between the end
// points. A weight of ±1 describes a parabola, which is an ordinary quadratic
// Bézier, and weights beyond that describe hyperbolas.
type RationalQuadBez struct {
	P0 Point
	P1 HPoint
	P2 Point
}

// Homogeneous returns the three homogeneous control points.
func (r RationalQuadBez) Homogeneous() (HPoint, HPoint, HPoint) {
	return r.P0.Homogeneous(), r.P1, r.P2.Homogeneous()
}

// Weight returns the weight of the interior control point.
func (r RationalQuadBez) Weight() float64 {
	return r.P1.W
}

// evalH evaluates the homogeneous numerator and denominator at t.
func (r RationalQuadBez) evalH(t float64) HPoint {
	mt := 1 - t
	a := mt * mt
	b := 2 * t * mt
	c := t * t
	return HPoint{
		a*r.P0.X + b*r.P1.X + c*r.P2.X,
		a*r.P0.Y + b*r.P1.Y + c*r.P2.Y,
		a + b*r.P1.W + c,
	}
}

// derivH evaluates the derivative of the homogeneous curve at t.
func (r RationalQuadBez) derivH(t float64) HPoint {
	h0, h1, h2 := r.Homogeneous()
	d0 := h1.Sub(h0).Mul(2)
	d1 := h2.Sub(h1).Mul(2)
	return d0.Mul(1 - t).Add(d1.Mul(t))
}

// secondDerivH returns the constant second derivative of the homogeneous
// curve.
func (r RationalQuadBez) secondDerivH() HPoint {
	h0, h1, h2 := r.Homogeneous()
	return h2.Sub(h1.Mul(2)).Add(h0).Mul(2)
}

func (r RationalQuadBez) Eval(t float64) Point {
	return r.evalH(t).Project()
}

// Deriv returns the derivative of the projected curve at t.
func (r RationalQuadBez) Deriv(t float64) Vec2 {
	h := r.evalH(t)
	d := r.derivH(t)
	w2 := h.W * h.W
	return Vec2{
		X: (d.X*h.W - h.X*d.W) / w2,
		Y: (d.Y*h.W - h.Y*d.W) / w2,
	}
}

// Tangents returns directions along the curve at its two end points. When
// the first derivative vanishes at an end, the direction is taken from the
// second derivative, and failing that from the chord.
func (r RationalQuadBez) Tangents(eps Epsilon) (Vec2, Vec2) {
	w := r.P1.W
	chord := r.P2.Sub(r.P0)
	// Up to positive factors, the projected derivatives at the ends are
	// P1 − P0·w and P2·w − P1.
	d0 := Vec(r.P1.X-r.P0.X*w, r.P1.Y-r.P0.Y*w)
	d1 := Vec(r.P2.X*w-r.P1.X, r.P2.Y*w-r.P1.Y)
	if eps.IsZero(d0.Hypot2()) || eps.IsZero(d1.Hypot2()) {
		dd := r.secondDerivH()
		if eps.IsZero(d0.Hypot2()) {
			d0 = Vec(dd.X-r.P0.X*dd.W, dd.Y-r.P0.Y*dd.W)
		}
		if eps.IsZero(d1.Hypot2()) {
			d1 = Vec(r.P2.X*dd.W-dd.X, r.P2.Y*dd.W-dd.Y)
		}
	}
	if eps.IsZero(d0.Hypot2()) {
		d0 = chord
	}
	if eps.IsZero(d1.Hypot2()) {
		d1 = chord
	}
	return d0, d1
}

// IsBounded reports whether the denominator of the curve stays positive on
// [0, 1], which is the case for w > −1.
func (r RationalQuadBez) IsBounded(eps Epsilon) bool {
	return r.P1.W > -1 && !eps.IsZero(1+r.P1.W)
}

// Canonize converts a rational quadratic with arbitrary end weights into
// canonical form. Reports false if the end weights have different signs or
// vanish, in which case the curve passes through infinity and has no
// canonical form.
func Canonize(p0, p1, p2 HPoint, eps Epsilon) (RationalQuadBez, bool) {
	if eps.IsOne(p0.W) && eps.IsOne(p2.W) {
		return RationalQuadBez{Pt(p0.X, p0.Y), p1, Pt(p2.X, p2.Y)}, true
	}
	w0w2 := p0.W * p2.W
	if w0w2 <= 0 || eps.IsZero(w0w2) {
		return RationalQuadBez{}, false
	}
	s := 1 / math.Sqrt(w0w2)
	if p0.W < 0 {
		s = -s
	}
	return RationalQuadBez{p0.Project(), p1.Mul(s), p2.Project()}, true
}

// Split splits the curve at t, using de Casteljau on the homogeneous control
// points, and returns both halves in canonical form.
//
// The curve must be bounded on [0, t] and [t, 1].
func (r RationalQuadBez) Split(t float64) (RationalQuadBez, RationalQuadBez) {
	h0, h1, h2 := r.Homogeneous()
	a := h0.Add(h1.Sub(h0).Mul(t))
	b := h1.Add(h2.Sub(h1).Mul(t))
	m := a.Add(b.Sub(a).Mul(t))
	mp := m.Project()
	// Rescaling the left half by 1/√(w_m) and the right half likewise gives
	// unit end weights on both.
	s := 1 / math.Sqrt(m.W)
	return RationalQuadBez{r.P0, a.Mul(s), mp},
		RationalQuadBez{mp, b.Mul(s), r.P2}
}

// Subdivide splits the curve at t = ½. For a canonical curve with weight w
// both halves have weight √((1+w)/2).
func (r RationalQuadBez) Subdivide() (RationalQuadBez, RationalQuadBez) {
	return r.Split(0.5)
}

// Arclen returns the arc length of the curve between t0 and t1, using
// Gauss-Legendre quadrature on the speed of the projected curve.
func (r RationalQuadBez) Arclen(t0, t1 float64) float64 {
	return gaussLegendre(func(t float64) float64 { return r.Deriv(t).Hypot() }, t0, t1)
}

// SolveForArclen returns the parameter at which the arc length from the
// start reaches the given fraction of the total, which must be known.
//
// Like the arc length solvers for polynomial segments, it computes the length
// of progressively smaller subsegments instead of always integrating from 0.
func (r RationalQuadBez) SolveForArclen(arclen, total, accuracy float64) float64 {
	if arclen <= 0 {
		return 0
	}
	if arclen >= total {
		return 1
	}
	tLast := 0.0
	arclenLast := 0.0
	epsilon := accuracy / total
	f := func(t float64) float64 {
		if t > tLast {
			arclenLast += r.Arclen(tLast, t)
		} else {
			arclenLast -= r.Arclen(t, tLast)
		}
		tLast = t
		return arclenLast - arclen
	}
	return SolveITP(f, 0, 1, epsilon, 1, 0.2, -arclen, total-arclen)
}

// Transform applies t to the curve, transforming the interior control point
// jointly with its weight, and canonizes the result. It reports false if the
// transformed curve passes through infinity.
func (r RationalQuadBez) Transform(t Transform, eps Epsilon) (RationalQuadBez, bool) {
	h0, h1, h2 := r.Homogeneous()
	return Canonize(t.ApplyH(h0), t.ApplyH(h1), t.ApplyH(h2), eps)
}

func (r RationalQuadBez) IsInf() bool {
	return r.P0.IsInf() || r.P1.IsInf() || r.P2.IsInf()
}

func (r RationalQuadBez) IsNaN() bool {
	return r.P0.IsNaN() || r.P1.IsNaN() || r.P2.IsNaN()
}
