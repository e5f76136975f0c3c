package vpath

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVGWriter].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int `toml:"max_precision"`

	// Approx controls the approximation of conics that can't be written as
	// arcs, and provides the epsilon for converting the others.
	Approx ApproxOptions `toml:"-"`
}

// SVGWriter is a sink that writes SVG path data.
//
// It understands elliptical arcs. Conics that reach it are written as arcs
// when possible and approximated by cubics otherwise, see [ConicToArc].
// Contours that end open are written without a closepath.
//
// Sink methods can't return errors, so the first write error is kept and
// returned by [SVGWriter.Err]; nothing is written after it.
type SVGWriter struct {
	w      io.Writer
	opts   SVGOptions
	err    error
	first  bool
	conics *ConicToArcs[*SVGWriter]
}

var _ ArcSink = (*SVGWriter)(nil)

func NewSVGWriter(w io.Writer, opts SVGOptions) *SVGWriter {
	sw := &SVGWriter{w: w, opts: opts, first: true}
	sw.conics = NewConicToArcs(opts.Approx, sw)
	return sw
}

// Err returns the first error encountered while writing.
func (sw *SVGWriter) Err() error {
	return sw.err
}

func (sw *SVGWriter) format(n float64) string {
	maxPrec := sw.opts.MaxPrecision
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
}

// writef writes one command, separating it from the previous one.
func (sw *SVGWriter) writef(s string, v ...any) {
	if sw.err != nil {
		return
	}
	if !sw.first {
		if _, err := io.WriteString(sw.w, " "); err != nil {
			sw.err = err
			return
		}
	}
	sw.first = false
	_, sw.err = fmt.Fprintf(sw.w, s, v...)
}

func (sw *SVGWriter) pt(x, y float64) string {
	return sw.format(x) + "," + sw.format(y)
}

func (sw *SVGWriter) BeginContour(x0, y0 float64) {
	sw.writef("M%s", sw.pt(x0, y0))
}

func (sw *SVGWriter) EndOpenContour(x0, y0 float64) {}

func (sw *SVGWriter) EndClosedContour(x0, y0 float64) {
	sw.writef("Z")
}

func (sw *SVGWriter) LinearSegment(x0, y0, x1, y1 float64) {
	sw.writef("L%s", sw.pt(x1, y1))
}

func (sw *SVGWriter) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	sw.writef("Q%s %s", sw.pt(x1, y1), sw.pt(x2, y2))
}

func (sw *SVGWriter) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	sw.conics.RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2)
}

func (sw *SVGWriter) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	sw.writef("C%s %s %s", sw.pt(x1, y1), sw.pt(x2, y2), sw.pt(x3, y3))
}

func (sw *SVGWriter) EllipticalArcSegment(x0, y0, rx, ry, rot float64, largeArc, sweep bool, x2, y2 float64) {
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	sw.writef("A%s %s %d %d %s",
		sw.pt(rx, ry), sw.format(rot),
		flag(largeArc), flag(sweep),
		sw.pt(x2, y2))
}

// SVG converts the path data pushed by emit into a string of SVG path
// commands.
func SVG(opts SVGOptions, emit func(s Sink)) string {
	var sb strings.Builder
	emit(NewSVGWriter(&sb, opts))
	return sb.String()
}
