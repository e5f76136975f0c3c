package vpath

import (
	"math"

	"github.com/go-logr/logr"
)

// ApproxOptions configures the approximation of conics by cubics. The zero
// value selects the defaults.
type ApproxOptions struct {
	// Tolerance is the maximum distance between a conic and the cubics that
	// replace it. It defaults to 1e-2.
	Tolerance float64 `toml:"tolerance"`
	// MaxDepth bounds the number of times a conic gets halved, so at most
	// 2^MaxDepth cubics replace a single conic (twice that for large arcs).
	// It defaults to 8; a negative value disables subdivision.
	MaxDepth int `toml:"max_depth"`
	// Samples is the number of intervals that the fit samples the conic
	// at. It defaults to 16 and is at least 4.
	Samples int     `toml:"samples"`
	Epsilon Epsilon `toml:"epsilon"`
	// Logger receives a message whenever an approximation doesn't meet
	// the tolerance. It defaults to discarding everything.
	Logger logr.Logger `toml:"-"`
}

func (opts ApproxOptions) withDefaults() ApproxOptions {
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-2
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = 8
	}
	if opts.Samples == 0 {
		opts.Samples = 16
	}
	opts.Samples = max(opts.Samples, 4)
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}
	return opts
}

// ApproximateConic replaces the conic c with a chain of cubics, or with a
// quadratic or a line when that is exact, and pushes them to sink. The
// emitted chain starts at c.P0 and ends at c.P2 exactly.
//
// Each cubic is fitted to the conic with its end points and end tangents
// fixed. When the fit deviates from the conic by more than the tolerance,
// the conic is split in half and both halves are fitted separately, until
// opts.MaxDepth is reached. The fit and the measured error don't depend on
// the tolerance, so the number of cubics never decreases as the tolerance
// shrinks.
//
// ApproximateConic never fails. When the subdivision budget runs out it emits
// the best fits it has, and it replaces conics that pass through infinity
// with their chords. Both cases are flagged in the returned report and
// logged.
func ApproximateConic(c RationalQuadBez, opts ApproxOptions, sink Sink) ApproximationReport {
	opts = opts.withDefaults()
	eps := opts.Epsilon
	rep := ApproximationReport{Conic: c, Tolerance: opts.Tolerance}
	w := c.P1.W

	if !c.IsBounded(eps) {
		emitLine(sink, c.P0, c.P2)
		rep.Segments = 1
		rep.Unbounded = true
		opts.Logger.Info("replaced unbounded conic by its chord", "conic", c)
		return rep
	}
	if eps.IsZero(1-w*w) || eps.IsOne(w) {
		p1 := c.P1.Project()
		if eps.IsEqualPoints(c.P0, p1) && eps.IsEqualPoints(p1, c.P2) {
			emitLine(sink, c.P0, c.P2)
		} else {
			emitQuad(sink, QuadBez{c.P0, p1, c.P2})
		}
		rep.Segments = 1
		return rep
	}
	if eps.IsEqualPoints(c.P0, c.P2) &&
		eps.IsZero(c.P1.X-w*c.P0.X) && eps.IsZero(c.P1.Y-w*c.P0.Y) {
		emitLine(sink, c.P0, c.P2)
		rep.Segments = 1
		return rep
	}

	a := approximator{opts: opts, sink: sink, rep: &rep}
	a.run(c, 0)
	if rep.Exhausted {
		opts.Logger.Info("conic approximation exceeds tolerance",
			"tolerance", opts.Tolerance,
			"maxError", rep.MaxError,
			"segments", rep.Segments,
			"maxDepth", opts.MaxDepth)
	}
	return rep
}

type approximator struct {
	opts ApproxOptions
	sink Sink
	rep  *ApproximationReport
}

func (a *approximator) run(c RationalQuadBez, depth int) {
	if c.P1.W < 0 {
		// Large arcs turn by more than half a revolution, which no single
		// cubic can follow. Halving them doesn't count against the budget.
		l, r := c.Subdivide()
		a.run(l, depth)
		a.run(r, depth)
		return
	}
	cb, err := a.fit(c)
	if err > a.opts.Tolerance {
		if depth < a.opts.MaxDepth {
			l, r := c.Subdivide()
			a.run(l, depth+1)
			a.run(r, depth+1)
			return
		}
		a.rep.Exhausted = true
	}
	emitCubic(a.sink, cb)
	a.rep.Segments++
	a.rep.MaxError = max(a.rep.MaxError, err)
}

// fit finds the cubic with the conic's end points and end tangents that is
// closest to points sampled at even arc length intervals, alternating between
// solving for the tangent lengths and reparametrizing the samples. It
// returns the cubic and its measured distance from the conic.
func (a *approximator) fit(c RationalQuadBez) (CubicBez, float64) {
	const maxIterations = 10
	eps := a.opts.Epsilon
	n := a.opts.Samples
	q0, q3 := c.P0, c.P2
	thirds := CubicBez{q0, q0.Lerp(q3, 1.0/3.0), q0.Lerp(q3, 2.0/3.0), q3}

	total := c.Arclen(0, 1)
	if eps.IsZero(total) || math.IsNaN(total) {
		return thirds, 0
	}
	ts := make([]float64, n+1)
	pts := make([]Point, n+1)
	us := make([]float64, n+1)
	for i := range ts {
		ts[i] = c.SolveForArclen(total*float64(i)/float64(n), total, total*1e-9)
		pts[i] = c.Eval(ts[i])
		us[i] = float64(i) / float64(n)
	}
	ts[0], ts[n] = 0, 1
	pts[0], pts[n] = q0, q3

	d0, d3 := c.Tangents(eps)
	d0, d3 = d0.Normalize(), d3.Normalize()
	// Starting lengths for when the least squares problem is singular.
	guess := q0.Distance(q3) / 3

	best, bestErr := thirds, math.Inf(1)
	for iter := range maxIterations {
		el0, el3, ok := fitTangentLengths(q0, d0, q3, d3, pts, us, eps)
		if !ok || el0 <= 0 || el3 >= 0 {
			el0, el3 = guess, -guess
		}
		cb := CubicBez{q0, q0.Translate(d0.Mul(el0)), q3.Translate(d3.Mul(el3)), q3}
		e := sampleError(cb, pts, us)
		if e >= bestErr {
			break
		}
		prev := bestErr
		best, bestErr = cb, e
		if iter > 0 && prev-e <= 1e-6*prev {
			break
		}
		reparametrize(cb, pts, us)
	}
	return best, a.measure(c, best, ts, total)
}

// fitTangentLengths solves the normal equations for the signed distances
// of the inner control points from the end points along d0 and d3.
func fitTangentLengths(q0 Point, d0 Vec2, q3 Point, d3 Vec2, pts []Point, us []float64, eps Epsilon) (float64, float64, bool) {
	var a00, a01, a11, b0, b1 float64
	dd := d0.Dot(d3)
	for i, u := range us {
		mt := 1 - u
		bb0 := mt * mt * mt
		bb1 := 3 * mt * mt * u
		bb2 := 3 * mt * u * u
		bb3 := u * u * u
		r := Vec(
			pts[i].X-(bb0+bb1)*q0.X-(bb2+bb3)*q3.X,
			pts[i].Y-(bb0+bb1)*q0.Y-(bb2+bb3)*q3.Y,
		)
		a00 += bb1 * bb1
		a01 += bb1 * bb2 * dd
		a11 += bb2 * bb2
		b0 += bb1 * r.Dot(d0)
		b1 += bb2 * r.Dot(d3)
	}
	return SolveLinear2(a00, a01, a01, a11, b0, b1, eps)
}

// sampleError returns the largest distance between the samples and the
// points the cubic assigns to them.
func sampleError(cb CubicBez, pts []Point, us []float64) float64 {
	var e float64
	for i, u := range us {
		e = max(e, cb.Eval(u).Distance(pts[i]))
	}
	return e
}

// reparametrize moves every interior parameter one Newton step at a time
// towards the point of the cubic closest to its sample.
func reparametrize(cb CubicBez, pts []Point, us []float64) {
	const steps = 5
	d := cb.Differentiate()
	// The second derivative is linear, from dd0 to dd1.
	dd0 := d.P1.Sub(d.P0).Mul(2)
	dd1 := d.P2.Sub(d.P1).Mul(2)
	for i := 1; i < len(us)-1; i++ {
		u := us[i]
		for range steps {
			diff := cb.Eval(u).Sub(pts[i])
			d1 := Vec2(d.Eval(u))
			d2 := dd0.Lerp(dd1, u)
			den := d1.Hypot2() + diff.Dot(d2)
			if den == 0 {
				break
			}
			u = min(max(u-diff.Dot(d1)/den, 0), 1)
		}
		us[i] = u
	}
}

// measure returns the largest distance from the conic to the cubic, checked
// at the samples and at three points between neighboring samples.
func (a *approximator) measure(c RationalQuadBez, cb CubicBez, ts []float64, total float64) float64 {
	accuracy := total * 1e-6
	var e float64
	for i := range len(ts) - 1 {
		for k := range 4 {
			t := ts[i] + (ts[i+1]-ts[i])*float64(k)/4
			d, _ := cb.Nearest(c.Eval(t), accuracy)
			e = max(e, math.Sqrt(d))
		}
	}
	return e
}

// ConicToCubics is a filter that replaces conic segments with cubics, for
// consumers that don't understand conics. Reports about every approximation
// go to the downstream sink if it implements [ApproximationReporter].
type ConicToCubics[S Sink] struct {
	Forwarder[S]
	opts     ApproxOptions
	reporter ApproximationReporter
}

// NewConicToCubics returns the filter.
func NewConicToCubics[S Sink](opts ApproxOptions, sink S) *ConicToCubics[S] {
	return &ConicToCubics[S]{
		Forwarder: Forwarder[S]{sink},
		opts:      opts.withDefaults(),
		reporter:  ForwardIf[ApproximationReporter](sink, Null{}),
	}
}

func (f *ConicToCubics[S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	r := RationalQuadBez{Pt(x0, y0), HPt(x1, y1, w1), Pt(x2, y2)}
	f.reporter.ConicApproximated(ApproximateConic(r, f.opts, f.Downstream))
}
