package vpath

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

func TestSpy(t *testing.T) {
	var prefixes, lines []string
	newLogger := func(verbosity int) *Spy[*Path] {
		log := funcr.New(func(prefix, args string) {
			prefixes = append(prefixes, prefix)
			lines = append(lines, args)
		}, funcr.Options{Verbosity: verbosity})
		return NewSpy(log, &Path{})
	}

	in := mustParse(t, "M0,0 L1,0 Q2,0 2,1 C2,2 1,3 0,3 Z")
	s := newLogger(1)
	in.Iterate(s)
	diff(t, in, *s.Downstream)

	wantCalls := []string{"BeginContour", "LinearSegment", "QuadraticSegment", "CubicSegment", "EndClosedContour"}
	if len(lines) != len(wantCalls) {
		t.Fatalf("got %d log lines, want %d: %q", len(lines), len(wantCalls), lines)
	}
	for i, call := range wantCalls {
		if !strings.Contains(lines[i], `"msg"="`+call+`"`) {
			t.Errorf("line %d: got %s, want a %s call", i, lines[i], call)
		}
		if prefixes[i] != "spy" {
			t.Errorf("line %d: got prefix %q", i, prefixes[i])
		}
	}
	if !strings.Contains(lines[2], `"x1"=2`) {
		t.Errorf("arguments missing from %s", lines[2])
	}

	prefixes, lines = nil, nil
	in.Iterate(newLogger(0))
	if len(lines) != 0 {
		t.Errorf("got %d log lines at verbosity 0", len(lines))
	}
}

func TestSpyForwardsReports(t *testing.T) {
	out := newRecordingArcSink()
	s := NewSpy(funcr.New(func(prefix, args string) {}, funcr.Options{}), out)
	f := NewConicToCubics(ApproxOptions{}, s)
	f.BeginContour(1, 0)
	emitConic(f, RationalQuadBez{Pt(1, 0), HPt(1, 1, 0.5), Pt(0, 1)})
	f.EndOpenContour(0, 1)
	if len(out.reports) != 1 {
		t.Errorf("got %d reports, want 1", len(out.reports))
	}
}

func TestSpyResolvesReporter(t *testing.T) {
	out := newRecordingArcSink()
	if s := NewSpy(logr.Discard(), out); s.reporter != ApproximationReporter(out) {
		t.Errorf("got reporter %T, want the downstream sink", s.reporter)
	}

	// Paths don't take reports, which go nowhere.
	var p Path
	s := NewSpy(logr.Discard(), &p)
	if _, ok := s.reporter.(Null); !ok {
		t.Errorf("got reporter %T, want Null", s.reporter)
	}
	s.ConicApproximated(ApproximationReport{Segments: 1})
	if len(p) != 0 {
		t.Errorf("a report turned into path data: %v", p)
	}
}
