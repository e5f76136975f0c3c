package vpath

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseSVGPath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", nil},
		{" \n\t", nil},
		{
			"M10,20 L30,40 H50 V60 Z",
			Path{
				{Kind: BeginKind, P0: Pt(10, 20)},
				{Kind: LineToKind, P0: Pt(30, 40)},
				{Kind: LineToKind, P0: Pt(50, 40)},
				{Kind: LineToKind, P0: Pt(50, 60)},
				{Kind: EndClosedKind},
			},
		},
		{
			"m1,1 2,0 0,2z",
			Path{
				{Kind: BeginKind, P0: Pt(1, 1)},
				{Kind: LineToKind, P0: Pt(3, 1)},
				{Kind: LineToKind, P0: Pt(3, 3)},
				{Kind: EndClosedKind},
			},
		},
		{
			"M1,1 h2 v2 h-2z l1,1",
			Path{
				{Kind: BeginKind, P0: Pt(1, 1)},
				{Kind: LineToKind, P0: Pt(3, 1)},
				{Kind: LineToKind, P0: Pt(3, 3)},
				{Kind: LineToKind, P0: Pt(1, 3)},
				{Kind: EndClosedKind},
				// Drawing after a closepath begins a new contour at the
				// start of the closed one.
				{Kind: BeginKind, P0: Pt(1, 1)},
				{Kind: LineToKind, P0: Pt(2, 2)},
				{Kind: EndOpenKind},
			},
		},
		{
			"M0,0 C1,1 2,1 3,0 S5,-1 6,0",
			Path{
				{Kind: BeginKind, P0: Pt(0, 0)},
				{Kind: CubicToKind, P0: Pt(1, 1), P1: Pt(2, 1), P2: Pt(3, 0)},
				{Kind: CubicToKind, P0: Pt(4, -1), P1: Pt(5, -1), P2: Pt(6, 0)},
				{Kind: EndOpenKind},
			},
		},
		{
			"M0,0 L1,0 s1,1 2,0",
			Path{
				{Kind: BeginKind, P0: Pt(0, 0)},
				{Kind: LineToKind, P0: Pt(1, 0)},
				{Kind: CubicToKind, P0: Pt(1, 0), P1: Pt(2, 1), P2: Pt(3, 0)},
				{Kind: EndOpenKind},
			},
		},
		{
			"M0,0 Q1,1 2,0 T4,0 t2,0",
			Path{
				{Kind: BeginKind, P0: Pt(0, 0)},
				{Kind: QuadToKind, P0: Pt(1, 1), P1: Pt(2, 0)},
				{Kind: QuadToKind, P0: Pt(3, -1), P1: Pt(4, 0)},
				{Kind: QuadToKind, P0: Pt(5, 1), P1: Pt(6, 0)},
				{Kind: EndOpenKind},
			},
		},
		{
			"M0,0 1,1 M2,2 3,3",
			Path{
				{Kind: BeginKind, P0: Pt(0, 0)},
				{Kind: LineToKind, P0: Pt(1, 1)},
				{Kind: EndOpenKind},
				{Kind: BeginKind, P0: Pt(2, 2)},
				{Kind: LineToKind, P0: Pt(3, 3)},
				{Kind: EndOpenKind},
			},
		},
		{
			"M1e1-2.5.5.5",
			Path{
				{Kind: BeginKind, P0: Pt(10, -2.5)},
				{Kind: LineToKind, P0: Pt(0.5, 0.5)},
				{Kind: EndOpenKind},
			},
		},
		{
			// Coincident end points omit the arc, zero radii make it a
			// line.
			"M1,1 A1,1 0 0 1 1,1 A0,1 0 0 1 2,2",
			Path{
				{Kind: BeginKind, P0: Pt(1, 1)},
				{Kind: LineToKind, P0: Pt(2, 2)},
				{Kind: EndOpenKind},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			diff(t, tt.want, mustParse(t, tt.in))
		})
	}
}

func TestParseSVGPathArcs(t *testing.T) {
	w := math.Sqrt2 / 2
	got := mustParse(t, "M1,0 A1,1 0 0 1 0,1")
	want := Path{
		{Kind: BeginKind, P0: Pt(1, 0)},
		{Kind: ConicToKind, P0: Pt(w, w), P1: Pt(0, 1), W: w},
		{Kind: EndOpenKind},
	}
	diff(t, want, got, approx(1e-12))

	// Flags can be written without separators. The radii are too small and
	// get scaled up to a half circle.
	got = mustParse(t, "M0,0 a1 1 0 0110 0")
	if len(got) != 3 || got[1].Kind != ConicToKind {
		t.Fatalf("got %v", got)
	}
	diff(t, Pt(10, 0), got[1].P1)
	if math.Abs(got[1].W) > 1e-12 {
		t.Errorf("got weight %v, want a half circle", got[1].W)
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
		msg    string
	}{
		{"L1,2", 0, "moveto"},
		{"  z", 2, "moveto"},
		{"M1", 2, "expected 2 numbers"},
		{"M0,0 X1", 5, `unknown command 'X'`},
		{"M0,0 C1,2 3,4", 13, "expected 6 numbers"},
		{"M0,0 A1,1 0 2 1 3,3", 12, "arc flags"},
		{"M0,0 1,1 #", 9, `unknown command '#'`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseSVGPath(tt.in)
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("got %v, want a syntax error", err)
			}
			if serr.Offset != tt.offset || !strings.Contains(serr.Msg, tt.msg) {
				t.Errorf("got %v, want offset %d and %q", serr, tt.offset, tt.msg)
			}
		})
	}
}

func TestSVGRoundTrip(t *testing.T) {
	for _, in := range []string{
		"M10,20 L30,40 Q1,2 3,4 C5,6 7,8 9,10 Z M0,0 L1,1",
		"M-1.5,0.25 L1e-7,3",
	} {
		if got := mustParse(t, in).SVG(SVGOptions{}); got != strings.ReplaceAll(in, "1e-7", "0.0000001") {
			t.Errorf("got %q for %q", got, in)
		}
	}
}

func TestSVGWriterArcs(t *testing.T) {
	got := mustParse(t, "M1,0 A1,1 0 0 1 0,1").SVG(SVGOptions{MaxPrecision: 9})
	// The rotation of a circle is arbitrary.
	if !strings.HasPrefix(got, "M1,0 A1,1 ") || !strings.HasSuffix(got, " 0 1 0,1") {
		t.Errorf("got %q", got)
	}

	// Hyperbolas have no arc equivalent.
	got = SVG(SVGOptions{}, func(s Sink) {
		s.BeginContour(0, 0)
		s.RationalQuadraticSegment(0, 0, 2, 2, 2, 2, 0)
		s.EndOpenContour(2, 0)
	})
	if !strings.HasPrefix(got, "M0,0 C") || strings.Contains(got, "A") {
		t.Errorf("got %q", got)
	}
}

func TestSVGWriterApproxOptions(t *testing.T) {
	cubics := func(tol float64) int {
		got := SVG(SVGOptions{Approx: ApproxOptions{Tolerance: tol}}, func(s Sink) {
			s.BeginContour(0, 0)
			s.RationalQuadraticSegment(0, 0, 20, 20, 2, 20, 0)
			s.EndOpenContour(20, 0)
		})
		return strings.Count(got, "C")
	}
	loose, tight := cubics(1), cubics(1e-6)
	if loose == 0 || tight <= loose {
		t.Errorf("got %d cubics at tolerance 1 and %d at 1e-6", loose, tight)
	}
}

func TestSVGPrecision(t *testing.T) {
	got := SVG(SVGOptions{MaxPrecision: 2}, func(s Sink) {
		s.BeginContour(1.0/3, -0.001)
		s.LinearSegment(1.0/3, -0.001, 2, 2.5)
		s.EndClosedContour(2, 2.5)
	})
	if want := "M0.33,0 L2,2.5 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(b []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestSVGWriterErrors(t *testing.T) {
	fw := &failingWriter{}
	sw := NewSVGWriter(fw, SVGOptions{})
	mustParse(t, "M0,0 L1,1 L2,0 Z").Iterate(sw)
	if sw.Err() == nil || sw.Err().Error() != "disk full" {
		t.Errorf("got error %v", sw.Err())
	}
	if fw.n != 1 {
		t.Errorf("got %d writes after the first failure", fw.n-1)
	}
}
