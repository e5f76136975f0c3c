package vpath

// XForm is a filter that applies a transform to all path data.
//
// It keeps track of its own transformed current point and uses it for the
// leading coordinates of every call it emits, so that rounding in the
// transform never breaks the continuity of the emitted contours.
//
// Under affine transforms, every segment is mapped exactly. Under general
// projective transforms, lines map to lines and quadratics and conics map to
// conics, which are emitted in canonical form. Those that pass through
// infinity are replaced by their chords. The image of a cubic is a rational
// cubic, which the protocol can't express; XForm maps its control points as
// an approximation.
type XForm[T Transform, S Sink] struct {
	xf     T
	affine bool
	eps    Epsilon
	sink   S
	cur    Point
}

// NewXForm returns a filter that applies xf to all path data before passing
// it to sink.
func NewXForm[T Transform, S Sink](xf T, sink S) *XForm[T, S] {
	return NewXFormEpsilon(xf, DefaultEpsilon, sink)
}

// NewXFormEpsilon is like [NewXForm] but uses eps to decide whether
// transformed weights are still one.
func NewXFormEpsilon[T Transform, S Sink](xf T, eps Epsilon, sink S) *XForm[T, S] {
	affine := false
	switch t := any(xf).(type) {
	case Projective:
		affine = t.IsAffine()
	case AffineTransform:
		affine = true
	}
	return &XForm[T, S]{xf: xf, affine: affine, eps: eps, sink: sink}
}

func (f *XForm[T, S]) BeginContour(x0, y0 float64) {
	f.cur = f.xf.Apply(Pt(x0, y0))
	f.sink.BeginContour(f.cur.X, f.cur.Y)
}

func (f *XForm[T, S]) EndOpenContour(x0, y0 float64) {
	f.sink.EndOpenContour(f.cur.X, f.cur.Y)
}

func (f *XForm[T, S]) EndClosedContour(x0, y0 float64) {
	f.sink.EndClosedContour(f.cur.X, f.cur.Y)
}

func (f *XForm[T, S]) LinearSegment(x0, y0, x1, y1 float64) {
	p1 := f.xf.Apply(Pt(x1, y1))
	emitLine(f.sink, f.cur, p1)
	f.cur = p1
}

func (f *XForm[T, S]) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	if f.affine {
		p1 := f.xf.Apply(Pt(x1, y1))
		p2 := f.xf.Apply(Pt(x2, y2))
		emitQuad(f.sink, QuadBez{f.cur, p1, p2})
		f.cur = p2
		return
	}
	f.conic(Pt(x0, y0), HPt(x1, y1, 1), Pt(x2, y2))
}

func (f *XForm[T, S]) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	if f.affine {
		p1 := f.xf.ApplyH(HPt(x1, y1, w1))
		p2 := f.xf.Apply(Pt(x2, y2))
		emitConic(f.sink, RationalQuadBez{f.cur, p1, p2})
		f.cur = p2
		return
	}
	f.conic(Pt(x0, y0), HPt(x1, y1, w1), Pt(x2, y2))
}

// conic maps a conic through a projective transform. The start point was
// already mapped when it became the current point, but its weight still has
// to be computed from the untransformed p0.
func (f *XForm[T, S]) conic(p0 Point, p1 HPoint, p2 Point) {
	h0 := f.xf.ApplyH(p0.Homogeneous())
	h1 := f.xf.ApplyH(p1)
	h2 := f.xf.ApplyH(p2.Homogeneous())
	r, ok := Canonize(h0, h1, h2, f.eps)
	end := h2.Project()
	if !ok {
		emitLine(f.sink, f.cur, end)
		f.cur = end
		return
	}
	r.P0 = f.cur
	if f.eps.IsOne(r.P1.W) {
		emitQuad(f.sink, QuadBez{r.P0, Pt(r.P1.X, r.P1.Y), r.P2})
	} else {
		emitConic(f.sink, r)
	}
	f.cur = r.P2
}

func (f *XForm[T, S]) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	p1 := f.xf.Apply(Pt(x1, y1))
	p2 := f.xf.Apply(Pt(x2, y2))
	p3 := f.xf.Apply(Pt(x3, y3))
	emitCubic(f.sink, CubicBez{f.cur, p1, p2, p3})
	f.cur = p3
}
