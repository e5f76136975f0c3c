package vpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// unitArc returns the arc of the unit circle through (1, 0) that subtends
// 2·acos(w), as a conic with weight w.
func unitArc(w float64) RationalQuadBez {
	s := math.Sqrt(1 - w*w)
	return RationalQuadBez{Pt(w, -s), HPt(1, 0, w), Pt(w, s)}
}

// transformed applies an affine transform to a conic.
func transformed(c RationalQuadBez, t AffineTransform) RationalQuadBez {
	r, ok := c.Transform(t, DefaultEpsilon)
	if !ok {
		panic("affine transforms keep conics bounded")
	}
	return r
}

// mustParse parses SVG path data, failing the test on errors.
func mustParse(t *testing.T, s string) Path {
	t.Helper()
	p, err := ParseSVGPath(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
