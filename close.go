package vpath

// CloseContours is a filter that makes closed contours end where they began.
//
// When a contour ends closed and its last point differs from its first, the
// filter emits a linear segment back to the first point before ending the
// contour. The comparison is exact: contours that are already closed are
// expected to repeat the begin point bit for bit.
type CloseContours[S Sink] struct {
	Forwarder[S]
	all   bool
	open  bool
	start Point
	last  Point
}

// NewCloseContours returns a filter that closes contours that end closed.
func NewCloseContours[S Sink](sink S) *CloseContours[S] {
	return &CloseContours[S]{Forwarder: Forwarder[S]{sink}}
}

// NewCloseAllContours returns a filter that closes every contour, including
// those that end open. This is what consumers that fill paths want.
func NewCloseAllContours[S Sink](sink S) *CloseContours[S] {
	return &CloseContours[S]{Forwarder: Forwarder[S]{sink}, all: true}
}

func (f *CloseContours[S]) BeginContour(x0, y0 float64) {
	f.start = Pt(x0, y0)
	f.last = f.start
	f.open = true
	f.Downstream.BeginContour(x0, y0)
}

func (f *CloseContours[S]) close() {
	if f.last != f.start {
		emitLine(f.Downstream, f.last, f.start)
	}
	f.Downstream.EndClosedContour(f.start.X, f.start.Y)
	f.open = false
}

func (f *CloseContours[S]) EndOpenContour(x0, y0 float64) {
	if !f.open {
		return
	}
	if f.all {
		f.close()
		return
	}
	f.open = false
	f.Downstream.EndOpenContour(x0, y0)
}

func (f *CloseContours[S]) EndClosedContour(x0, y0 float64) {
	if !f.open {
		return
	}
	f.close()
}

func (f *CloseContours[S]) LinearSegment(x0, y0, x1, y1 float64) {
	f.last = Pt(x1, y1)
	f.Downstream.LinearSegment(x0, y0, x1, y1)
}

func (f *CloseContours[S]) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	f.last = Pt(x2, y2)
	f.Downstream.QuadraticSegment(x0, y0, x1, y1, x2, y2)
}

func (f *CloseContours[S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	f.last = Pt(x2, y2)
	f.Downstream.RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2)
}

func (f *CloseContours[S]) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	f.last = Pt(x3, y3)
	f.Downstream.CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3)
}
