package vpath

import "github.com/go-logr/logr"

// Spy is a filter that logs every call at verbosity 1 before passing it on
// unchanged.
type Spy[S Sink] struct {
	Forwarder[S]
	log      logr.Logger
	reporter ApproximationReporter
}

// NewSpy returns a filter that logs to log. The logger's name is extended
// with "spy".
func NewSpy[S Sink](log logr.Logger, sink S) *Spy[S] {
	return &Spy[S]{
		Forwarder: Forwarder[S]{sink},
		log:       log.WithName("spy").V(1),
		reporter:  ForwardIf[ApproximationReporter](sink, Null{}),
	}
}

func (s *Spy[S]) BeginContour(x0, y0 float64) {
	s.log.Info("BeginContour", "x0", x0, "y0", y0)
	s.Downstream.BeginContour(x0, y0)
}

func (s *Spy[S]) EndOpenContour(x0, y0 float64) {
	s.log.Info("EndOpenContour", "x0", x0, "y0", y0)
	s.Downstream.EndOpenContour(x0, y0)
}

func (s *Spy[S]) EndClosedContour(x0, y0 float64) {
	s.log.Info("EndClosedContour", "x0", x0, "y0", y0)
	s.Downstream.EndClosedContour(x0, y0)
}

func (s *Spy[S]) LinearSegment(x0, y0, x1, y1 float64) {
	s.log.Info("LinearSegment", "x0", x0, "y0", y0, "x1", x1, "y1", y1)
	s.Downstream.LinearSegment(x0, y0, x1, y1)
}

func (s *Spy[S]) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	s.log.Info("QuadraticSegment", "x0", x0, "y0", y0, "x1", x1, "y1", y1, "x2", x2, "y2", y2)
	s.Downstream.QuadraticSegment(x0, y0, x1, y1, x2, y2)
}

func (s *Spy[S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	s.log.Info("RationalQuadraticSegment", "x0", x0, "y0", y0, "x1", x1, "y1", y1, "w1", w1, "x2", x2, "y2", y2)
	s.Downstream.RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2)
}

func (s *Spy[S]) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	s.log.Info("CubicSegment", "x0", x0, "y0", y0, "x1", x1, "y1", y1, "x2", x2, "y2", y2, "x3", x3, "y3", y3)
	s.Downstream.CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3)
}

// ConicApproximated logs the report, and passes it on if the downstream sink
// accepted reports when the spy was created.
func (s *Spy[S]) ConicApproximated(rep ApproximationReport) {
	s.log.Info("ConicApproximated",
		"segments", rep.Segments,
		"maxError", rep.MaxError,
		"exhausted", rep.Exhausted,
		"unbounded", rep.Unbounded)
	s.reporter.ConicApproximated(rep)
}
