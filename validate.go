package vpath

import (
	"fmt"
	"math"
)

// ProtocolError describes a violation of the [Sink] protocol. [Validator]
// panics with values of this type.
type ProtocolError struct {
	// Call is the name of the offending method.
	Call string
	Msg  string
}

func (err *ProtocolError) Error() string {
	return fmt.Sprintf("vpath: %s: %s", err.Call, err.Msg)
}

// Validator is a filter that checks the calls it receives against the
// [Sink] protocol before passing them on: contours have to be begun before
// they receive segments and ended before the next one begins, the leading
// coordinates of every call have to match the current point, and all
// coordinates have to be finite.
//
// Protocol violations are programming errors, so Validator panics with a
// [*ProtocolError] instead of returning errors.
type Validator[S Sink] struct {
	Forwarder[S]
	// Epsilon decides whether leading coordinates match the current point.
	Epsilon Epsilon
	open    bool
	cur     Point
}

// NewValidator returns the filter, comparing points with [DefaultEpsilon].
func NewValidator[S Sink](sink S) *Validator[S] {
	return &Validator[S]{Forwarder: Forwarder[S]{sink}, Epsilon: DefaultEpsilon}
}

func (v *Validator[S]) fail(call, format string, args ...any) {
	panic(&ProtocolError{Call: call, Msg: fmt.Sprintf(format, args...)})
}

func (v *Validator[S]) check(call string, coords ...float64) {
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			v.fail(call, "non-finite coordinate %v", c)
		}
	}
	if !v.open {
		v.fail(call, "no open contour")
	}
	if p := Pt(coords[0], coords[1]); !v.Epsilon.IsEqualPoints(p, v.cur) {
		v.fail(call, "starts at %s, but the current point is %s", p, v.cur)
	}
}

func (v *Validator[S]) BeginContour(x0, y0 float64) {
	if v.open {
		v.fail("BeginContour", "previous contour wasn't ended")
	}
	v.open, v.cur = true, Pt(x0, y0)
	v.check("BeginContour", x0, y0)
	v.Downstream.BeginContour(x0, y0)
}

func (v *Validator[S]) EndOpenContour(x0, y0 float64) {
	v.check("EndOpenContour", x0, y0)
	v.open = false
	v.Downstream.EndOpenContour(x0, y0)
}

func (v *Validator[S]) EndClosedContour(x0, y0 float64) {
	v.check("EndClosedContour", x0, y0)
	v.open = false
	v.Downstream.EndClosedContour(x0, y0)
}

func (v *Validator[S]) LinearSegment(x0, y0, x1, y1 float64) {
	v.check("LinearSegment", x0, y0, x1, y1)
	v.cur = Pt(x1, y1)
	v.Downstream.LinearSegment(x0, y0, x1, y1)
}

func (v *Validator[S]) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	v.check("QuadraticSegment", x0, y0, x1, y1, x2, y2)
	v.cur = Pt(x2, y2)
	v.Downstream.QuadraticSegment(x0, y0, x1, y1, x2, y2)
}

func (v *Validator[S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	v.check("RationalQuadraticSegment", x0, y0, x1, y1, w1, x2, y2)
	v.cur = Pt(x2, y2)
	v.Downstream.RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2)
}

func (v *Validator[S]) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	v.check("CubicSegment", x0, y0, x1, y1, x2, y2, x3, y3)
	v.cur = Pt(x3, y3)
	v.Downstream.CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3)
}
