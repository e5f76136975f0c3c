package vpath

import (
	"math"
	"testing"
)

func TestConicEvalCircle(t *testing.T) {
	for _, w := range []float64{-0.9, -0.5, 0, 0.3, 0.7071, 0.99} {
		r := unitArc(w)
		for i := range 21 {
			p := r.Eval(float64(i) / 20)
			if d := Vec2(p).Hypot(); math.Abs(d-1) > 1e-12 {
				t.Errorf("w=%v: point %v isn't on the unit circle", w, p)
			}
		}
		assertNear(t, r.Eval(0.5), Pt(1, 0), 1e-12)
	}
}

func TestConicDeriv(t *testing.T) {
	r := RationalQuadBez{Pt(0, 0), HPt(2, 3, 0.5), Pt(4, -1)}
	const delta = 1e-6
	for i := range 11 {
		ts := float64(i) / 10 * (1 - delta)
		dApprox := r.Eval(ts + delta).Sub(r.Eval(ts)).Mul(1 / delta)
		if l := r.Deriv(ts).Sub(dApprox).Hypot(); l > 1e-4 {
			t.Errorf("t=%v: derivative off by %g", ts, l)
		}
	}
}

func TestConicSplit(t *testing.T) {
	r := RationalQuadBez{Pt(0, 0), HPt(1, 2, 0.4), Pt(3, 0)}
	for _, split := range []float64{0.25, 0.5, 0.8} {
		left, right := r.Split(split)
		diff(t, r.P0, left.P0)
		diff(t, left.P2, right.P0)
		diff(t, r.P2, right.P2)
		// Canonizing the halves reparametrizes them by a factor that
		// depends on the weight at the split point.
		k := math.Sqrt(r.evalH(split).W)
		for i := range 11 {
			u := float64(i) / 10
			sl := u / (u + k*(1-u))
			sr := k * u / ((1 - u) + k*u)
			assertNear(t, left.Eval(u), r.Eval(split*sl), 1e-12)
			assertNear(t, right.Eval(u), r.Eval(split+(1-split)*sr), 1e-12)
		}
	}
}

func TestConicSubdivideWeights(t *testing.T) {
	for _, w := range []float64{-0.9, -0.5, 0, 0.5, 0.9} {
		left, right := unitArc(w).Subdivide()
		want := math.Sqrt((1 + w) / 2)
		if math.Abs(left.P1.W-want) > 1e-12 || math.Abs(right.P1.W-want) > 1e-12 {
			t.Errorf("w=%v: got weights %v and %v, want %v", w, left.P1.W, right.P1.W, want)
		}
	}
}

func TestCanonize(t *testing.T) {
	r := RationalQuadBez{Pt(1, 2), HPt(3, 4, 0.5), Pt(5, 0)}
	h0, h1, h2 := r.Homogeneous()
	for _, scale := range []float64{1, 2, -1, -0.25} {
		got, ok := Canonize(h0.Mul(scale), h1.Mul(scale), h2.Mul(scale), DefaultEpsilon)
		if !ok {
			t.Fatalf("scale %v: canonization failed", scale)
		}
		diff(t, r, got, approx(1e-12))
	}

	// Different end weights reparametrize the curve but keep its shape.
	got, ok := Canonize(h0.Mul(4), h1, h2, DefaultEpsilon)
	if !ok {
		t.Fatal("canonization failed")
	}
	diff(t, r.P0, got.P0, approx(1e-12))
	diff(t, r.P2, got.P2, approx(1e-12))
	if math.Abs(got.P1.W-0.25) > 1e-12 {
		t.Errorf("got weight %v, want 0.25", got.P1.W)
	}

	if _, ok := Canonize(h0, h1, h2.Mul(-1), DefaultEpsilon); ok {
		t.Errorf("end weights of different signs should fail")
	}
	if _, ok := Canonize(h0, h1, HPt(1, 1, 0), DefaultEpsilon); ok {
		t.Errorf("an end point at infinity should fail")
	}
}

func TestConicIsBounded(t *testing.T) {
	for _, tt := range []struct {
		w    float64
		want bool
	}{
		{-2, false},
		{-1, false},
		{-0.999, true},
		{0, true},
		{1, true},
		{3, true},
	} {
		r := RationalQuadBez{Pt(0, 0), HPt(tt.w, tt.w, tt.w), Pt(2, 0)}
		if got := r.IsBounded(DefaultEpsilon); got != tt.want {
			t.Errorf("w=%v: got %t, want %t", tt.w, got, tt.want)
		}
	}
}

func TestConicArclen(t *testing.T) {
	for _, w := range []float64{0, 0.2, 0.5} {
		r := unitArc(w)
		want := 2 * math.Acos(w)
		if got := r.Arclen(0, 1); math.Abs(got-want) > 1e-6 {
			t.Errorf("w=%v: got length %v, want %v", w, got, want)
		}
		total := r.Arclen(0, 1)
		ts := r.SolveForArclen(total/2, total, 1e-9)
		if math.Abs(ts-0.5) > 1e-6 {
			t.Errorf("w=%v: half length reached at %v, want 0.5", w, ts)
		}
	}
}

func TestConicTangents(t *testing.T) {
	r := RationalQuadBez{Pt(0, 0), HPt(1, 1, 1), Pt(2, 0)}
	d0, d1 := r.Tangents(DefaultEpsilon)
	diff(t, Vec(1, 1), d0)
	diff(t, Vec(1, -1), d1)

	// The control point coincides with the start point.
	r = RationalQuadBez{Pt(0, 0), HPt(0, 0, 0.5), Pt(2, 0)}
	d0, _ = r.Tangents(DefaultEpsilon)
	if d0.Cross(Vec(1, 0)) != 0 || d0.Dot(Vec(1, 0)) <= 0 {
		t.Errorf("got start tangent %v, want one along the chord", d0)
	}
}

func TestQuadRaise(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(3, 9), Pt(6, -3)}
	c := q.Raise()
	diff(t, q.P0, c.P0)
	diff(t, q.P2, c.P3)
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, c.Eval(ts), q.Eval(ts), 1e-12)
	}
	conic := q.Conic()
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, conic.Eval(ts), q.Eval(ts), 1e-12)
	}
}

func TestCubicNearest(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	for _, ts := range []float64{0, 0.2, 0.5, 0.9, 1} {
		p := c.Eval(ts)
		d, got := c.Nearest(p, 1e-9)
		if d > 1e-9 || math.Abs(got-ts) > 1e-6 {
			t.Errorf("t=%v: got distance %v at %v", ts, d, got)
		}
	}
	d, _ := c.Nearest(Pt(0.5, 2), 1e-9)
	if math.Abs(d-1.5625) > 1e-6 {
		t.Errorf("got squared distance %v, want 1.5625", d)
	}
}
