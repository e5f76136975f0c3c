package vpath

// Sink consumes path data, one call at a time.
//
// A source calls BeginContour, then any number of segment methods, then
// exactly one of EndOpenContour and EndClosedContour. The leading coordinates
// of every segment and end call repeat the current point, which is the begin
// point or the end point of the previous segment. Implementations may rely
// on this and are not required to check it; see [Validator] for a filter that
// does.
type Sink interface {
	BeginContour(x0, y0 float64)
	EndOpenContour(x0, y0 float64)
	// EndClosedContour ends the contour, implying a return to its begin
	// point. It doesn't imply a segment back to it; see [CloseContours].
	EndClosedContour(x0, y0 float64)
	LinearSegment(x0, y0, x1, y1 float64)
	QuadraticSegment(x0, y0, x1, y1, x2, y2 float64)
	// RationalQuadraticSegment describes a conic segment in canonical form.
	// (x1, y1, w1) is the interior control point in homogeneous
	// coordinates, as in [RationalQuadBez].
	RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64)
	CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64)
}

// ArcSink is a [Sink] that also accepts elliptical arcs, in the endpoint
// parameterization used by SVG. rot is the rotation of the x axis of the
// ellipse, in degrees.
type ArcSink interface {
	Sink
	EllipticalArcSegment(x0, y0, rx, ry, rot float64, largeArc, sweep bool, x2, y2 float64)
}

// ApproximationReport describes the outcome of approximating one conic
// segment, see [ApproximateConic].
type ApproximationReport struct {
	Conic     RationalQuadBez
	Tolerance float64
	// Segments is the number of segments that replaced the conic.
	Segments int
	// MaxError is the largest measured distance between the conic and its
	// replacement.
	MaxError float64
	// Exhausted is set when the subdivision budget ran out before MaxError
	// dropped below Tolerance.
	Exhausted bool
	// Unbounded is set when the conic passes through infinity and was
	// replaced by its chord.
	Unbounded bool
}

// Failed reports whether the approximation didn't meet its tolerance.
func (rep ApproximationReport) Failed() bool {
	return rep.Exhausted || rep.Unbounded
}

// ApproximationReporter can be implemented by sinks that want to be told
// about approximations made by filters upstream of them. Filters look for it
// with [ForwardIf] when they are constructed.
type ApproximationReporter interface {
	ConicApproximated(rep ApproximationReport)
}

// ForwardIf returns sink as a T if it implements T, and fallback otherwise.
//
// Filters call it once, at construction, to decide where to send calls of an
// optional protocol. fallback is usually [Null].
func ForwardIf[T any](sink any, fallback T) T {
	if t, ok := sink.(T); ok {
		return t
	}
	return fallback
}

// Null is a sink that discards everything. It implements every protocol in
// this package.
type Null struct{}

var (
	_ ArcSink               = Null{}
	_ ApproximationReporter = Null{}
)

func (Null) BeginContour(x0, y0 float64) {}
func (Null) EndOpenContour(x0, y0 float64) {}
func (Null) EndClosedContour(x0, y0 float64) {}
func (Null) LinearSegment(x0, y0, x1, y1 float64) {}
func (Null) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {}
func (Null) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {}
func (Null) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {}
func (Null) ConicApproximated(rep ApproximationReport) {}

func (Null) EllipticalArcSegment(x0, y0, rx, ry, rot float64, largeArc, sweep bool, x2, y2 float64) {
}

// Forwarder passes every call on to Downstream unchanged. Filters embed it
// and override the calls they care about.
type Forwarder[S Sink] struct {
	Downstream S
}

func (f *Forwarder[S]) BeginContour(x0, y0 float64) {
	f.Downstream.BeginContour(x0, y0)
}

func (f *Forwarder[S]) EndOpenContour(x0, y0 float64) {
	f.Downstream.EndOpenContour(x0, y0)
}

func (f *Forwarder[S]) EndClosedContour(x0, y0 float64) {
	f.Downstream.EndClosedContour(x0, y0)
}

func (f *Forwarder[S]) LinearSegment(x0, y0, x1, y1 float64) {
	f.Downstream.LinearSegment(x0, y0, x1, y1)
}

func (f *Forwarder[S]) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	f.Downstream.QuadraticSegment(x0, y0, x1, y1, x2, y2)
}

func (f *Forwarder[S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	f.Downstream.RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2)
}

func (f *Forwarder[S]) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	f.Downstream.CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3)
}

// emitCubic, emitQuad and emitConic push geometry types to a sink.

func emitCubic(s Sink, c CubicBez) {
	s.CubicSegment(c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}

func emitQuad(s Sink, q QuadBez) {
	s.QuadraticSegment(q.P0.X, q.P0.Y, q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
}

func emitConic(s Sink, r RationalQuadBez) {
	s.RationalQuadraticSegment(r.P0.X, r.P0.Y, r.P1.X, r.P1.Y, r.P1.W, r.P2.X, r.P2.Y)
}

func emitLine(s Sink, p0, p1 Point) {
	s.LinearSegment(p0.X, p0.Y, p1.X, p1.Y)
}
