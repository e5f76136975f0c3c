package vpath

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise returns the cubic Bézier segment that exactly represents this
// quadratic. Its inner control points are (P0+2·P1)/3 and (P2+2·P1)/3.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		Pt((q.P0.X+2*q.P1.X)/3, (q.P0.Y+2*q.P1.Y)/3),
		Pt((q.P2.X+2*q.P1.X)/3, (q.P2.Y+2*q.P1.Y)/3),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Nearest finds the nearest point, using an analytical algorithm based on
// cubic root finding.
func (q QuadBez) Nearest(pt Point) (distSq, outT float64) {
	var rBest option[float64]
	tBest := 0.0
	evalT := func(t float64, p Point) {
		r := p.Sub(pt).Hypot2()
		if !rBest.isSet || r < rBest.value {
			rBest.set(r)
			tBest = t
		}
	}
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	needEnds := n == 0
	for _, t := range roots[:n] {
		if t >= 0.0 && t <= 1.0 {
			evalT(t, q.Eval(t))
		} else {
			needEnds = true
		}
	}
	if needEnds {
		evalT(0.0, q.P0)
		evalT(1.0, q.P2)
	}
	return rBest.value, tBest
}

func (q QuadBez) Transform(t Transform) QuadBez {
	return QuadBez{
		P0: t.Apply(q.P0),
		P1: t.Apply(q.P1),
		P2: t.Apply(q.P2),
	}
}

// Conic returns the quadratic as a rational quadratic with unit weight.
func (q QuadBez) Conic() RationalQuadBez {
	return RationalQuadBez{q.P0, q.P1.Homogeneous(), q.P2}
}
