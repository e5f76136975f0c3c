package vpath

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
)

// approximate runs ApproximateConic and returns the emitted cubics.
func approximate(t *testing.T, c RationalQuadBez, opts ApproxOptions) ([]CubicBez, ApproximationReport) {
	t.Helper()
	var p Path
	p.BeginContour(c.P0.X, c.P0.Y)
	rep := ApproximateConic(c, opts, &p)
	var out []CubicBez
	cur := c.P0
	for seg := range p.Segments() {
		if seg.Kind != CubicKind {
			t.Fatalf("got %v segment, want cubics", seg.Kind)
		}
		if seg.P0 != cur {
			t.Fatalf("cubic starts at %v, want %v", seg.P0, cur)
		}
		cur = seg.End()
		out = append(out, seg.Cubic())
	}
	if cur != c.P2 {
		t.Fatalf("cubics end at %v, want %v", cur, c.P2)
	}
	if rep.Segments != len(out) {
		t.Errorf("report claims %d segments, got %d", rep.Segments, len(out))
	}
	return out, rep
}

// deviation returns the largest distance from densely sampled points of c
// to the cubics.
func deviation(c RationalQuadBez, cubics []CubicBez) float64 {
	const n = 2000
	boxes := make([]Rect, len(cubics))
	for i, cb := range cubics {
		boxes[i] = NewRectFromPoints(cb.P0, cb.P3).UnionPoint(cb.P1).UnionPoint(cb.P2)
	}
	var worst float64
	for i := range n + 1 {
		p := c.Eval(float64(i) / n)
		best := math.Inf(1)
		for j, cb := range cubics {
			// Skip cubics whose control box is farther away than the best
			// candidate so far.
			b := boxes[j]
			dx := max(b.X0-p.X, 0, p.X-b.X1)
			dy := max(b.Y0-p.Y, 0, p.Y-b.Y1)
			if dx*dx+dy*dy >= best {
				continue
			}
			d, _ := cb.Nearest(p, 1e-6)
			best = min(best, d)
		}
		worst = max(worst, math.Sqrt(best))
	}
	return worst
}

func TestApproximateConicTolerance(t *testing.T) {
	ellipse := Affine{30, 5, -8, 12, 3, 4}
	for _, w := range []float64{-0.99, -0.9, -0.5, -0.1, 0, 0.1, 0.5, 0.9, 0.99} {
		for _, tol := range []float64{1e-1, 1e-2, 1e-3} {
			t.Run(fmt.Sprintf("w=%v/tol=%v", w, tol), func(t *testing.T) {
				c, ok := unitArc(w).Transform(ellipse, DefaultEpsilon)
				if !ok {
					t.Fatal("transform failed")
				}
				cubics, rep := approximate(t, c, ApproxOptions{Tolerance: tol})
				if rep.Failed() {
					t.Fatalf("approximation failed: %+v", rep)
				}
				if d := deviation(c, cubics); d > tol*1.05 {
					t.Errorf("deviation %g exceeds tolerance %g", d, tol)
				}
				if rep.MaxError > tol {
					t.Errorf("reported error %g exceeds tolerance %g", rep.MaxError, tol)
				}
			})
		}
	}
}

func TestApproximateConicMonotonic(t *testing.T) {
	for _, c := range []RationalQuadBez{
		transformed(unitArc(0.3), Scale(100, 40)),
		transformed(unitArc(-0.8), Scale(10, 10)),
		{Pt(0, 0), HPt(10, 10, 2), Pt(20, 0)},
	} {
		last := 0
		for _, tol := range []float64{1, 1e-1, 1e-2, 1e-3, 1e-4, 1e-5} {
			_, rep := approximate(t, c, ApproxOptions{Tolerance: tol})
			if rep.Segments < last {
				t.Errorf("%v: %d segments at tolerance %g, but %d at a larger one", c, rep.Segments, tol, last)
			}
			last = rep.Segments
		}
	}
}

func TestApproximateConicSubdivision(t *testing.T) {
	c := transformed(unitArc(0.2), Scale(100, 100))

	_, rep := approximate(t, c, ApproxOptions{Tolerance: 1e-6, MaxDepth: -1})
	if rep.Segments != 1 {
		t.Errorf("got %d segments without subdivision, want 1", rep.Segments)
	}
	if !rep.Exhausted {
		t.Errorf("a single cubic can't meet the tolerance, but the report says it did")
	}

	// Large arcs are halved before fitting, without counting against the
	// depth.
	_, rep = approximate(t, unitArc(-0.5), ApproxOptions{MaxDepth: -1})
	if rep.Segments != 2 {
		t.Errorf("got %d segments for a large arc, want 2", rep.Segments)
	}

	_, rep = approximate(t, c, ApproxOptions{Tolerance: 1e-9, MaxDepth: 3})
	if rep.Segments > 8 {
		t.Errorf("got %d segments with a maximum depth of 3", rep.Segments)
	}
}

func TestApproximateConicSpecialCases(t *testing.T) {
	tests := []struct {
		name string
		c    RationalQuadBez
		want Path
	}{
		{
			"parabola",
			RationalQuadBez{Pt(0, 0), HPt(1, 1, 1), Pt(2, 0)},
			Path{{Kind: BeginKind}, {Kind: QuadToKind, P0: Pt(1, 1), P1: Pt(2, 0)}},
		},
		{
			"point",
			RationalQuadBez{Pt(1, 1), HPt(0.5, 0.5, 0.5), Pt(1, 1)},
			Path{{Kind: BeginKind, P0: Pt(1, 1)}, {Kind: LineToKind, P0: Pt(1, 1)}},
		},
		{
			"unbounded",
			RationalQuadBez{Pt(0, 0), HPt(1, 1, -1), Pt(2, 0)},
			Path{{Kind: BeginKind}, {Kind: LineToKind, P0: Pt(2, 0)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Path
			p.BeginContour(tt.c.P0.X, tt.c.P0.Y)
			rep := ApproximateConic(tt.c, ApproxOptions{}, &p)
			diff(t, tt.want, p)
			if rep.Segments != 1 {
				t.Errorf("got %d segments, want 1", rep.Segments)
			}
		})
	}
}

func TestApproximateConicLogs(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	var p Path
	p.BeginContour(0, 0)
	rep := ApproximateConic(RationalQuadBez{Pt(0, 0), HPt(1, 1, -2), Pt(2, 0)}, ApproxOptions{Logger: log}, &p)
	if !rep.Unbounded || !rep.Failed() {
		t.Errorf("got %+v, want an unbounded report", rep)
	}
	if len(lines) != 1 || !strings.Contains(lines[0], "unbounded") {
		t.Errorf("got log lines %q", lines)
	}

	lines = nil
	ApproximateConic(transformed(unitArc(0), Scale(100, 100)), ApproxOptions{Tolerance: 1e-9, MaxDepth: 1, Logger: log}, &p)
	if len(lines) != 1 || !strings.Contains(lines[0], "exceeds tolerance") {
		t.Errorf("got log lines %q", lines)
	}

	lines = nil
	ApproximateConic(unitArc(0.5), ApproxOptions{Logger: log}, &p)
	if len(lines) != 0 {
		t.Errorf("successful approximations shouldn't log, got %q", lines)
	}
}

func TestConicToCubicsFilter(t *testing.T) {
	out := newRecordingArcSink()
	f := NewConicToCubics(ApproxOptions{Tolerance: 1e-3}, out)
	f.BeginContour(0, 0)
	f.LinearSegment(0, 0, 1, 0)
	f.RationalQuadraticSegment(1, 0, 2, 1, 0.5, 3, 0)
	f.EndClosedContour(3, 0)

	if len(out.reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(out.reports))
	}
	rep := out.reports[0]
	if rep.Failed() || rep.Segments == 0 {
		t.Errorf("unexpected report %+v", rep)
	}
	want := 3 + rep.Segments
	if len(out.path) != want {
		t.Errorf("got %d elements, want %d", len(out.path), want)
	}
	for _, el := range out.path[2 : len(out.path)-1] {
		if el.Kind != CubicToKind {
			t.Errorf("got %v, want only cubics in place of the conic", el.Kind)
		}
	}
}

// TestPipeline runs a conic through a transform, the closing filter and the
// approximator, as a rendering backend without conic support would.
func TestPipeline(t *testing.T) {
	var out Path
	chain := NewXForm(Identity{},
		NewCloseAllContours(
			NewConicToCubics(ApproxOptions{Tolerance: 1e-3}, &out)))
	chain.BeginContour(0, 0)
	chain.RationalQuadraticSegment(0, 0, 5, 5, 0, 10, 0)
	chain.EndOpenContour(10, 0)

	if len(out) < 4 {
		t.Fatalf("got %d elements, want at least 4", len(out))
	}
	diff(t, PathElement{Kind: BeginKind, P0: Pt(0, 0)}, out[0])
	n := len(out)
	diff(t, PathElement{Kind: LineToKind, P0: Pt(0, 0)}, out[n-2])
	diff(t, PathElement{Kind: EndClosedKind}, out[n-1])
	for _, el := range out[1 : n-2] {
		if el.Kind != CubicToKind {
			t.Fatalf("got %v, want cubics", el.Kind)
		}
	}
	diff(t, Pt(10, 0), out[n-3].P2)

	c := RationalQuadBez{Pt(0, 0), HPt(5, 5, 0), Pt(10, 0)}
	var cubics []CubicBez
	for seg := range out.Segments() {
		if seg.Kind == CubicKind {
			cubics = append(cubics, seg.Cubic())
		}
	}
	if d := deviation(c, cubics); d > 1.05e-3 {
		t.Errorf("deviation %g exceeds tolerance", d)
	}
}
