package vpath

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Interoperability with the seehuhn.de/go/geom packages, which describe
// paths the way PDF does.

// AffineFromMatrix converts a PDF-style transformation matrix. Both types
// use the same coefficient order.
func AffineFromMatrix(m matrix.Matrix) Affine {
	return Affine{m[0], m[1], m[2], m[3], m[4], m[5]}
}

// Matrix converts the transform to a PDF-style transformation matrix.
func (aff Affine) Matrix() matrix.Matrix {
	return matrix.Matrix{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// RectFromGeom converts a rectangle given by its lower left and upper right
// corners.
func RectFromGeom(r rect.Rect) Rect {
	return Rect{r.LLx, r.LLy, r.URx, r.URy}
}

// Geom converts the rectangle, which must have non-negative width and
// height.
func (r Rect) Geom() rect.Rect {
	return rect.Rect{LLx: r.X0, LLy: r.Y0, URx: r.X1, URy: r.Y1}
}

func fromVec(v vec.Vec2) Point { return Point{v.X, v.Y} }
func toVec(p Point) vec.Vec2 { return vec.Vec2{X: p.X, Y: p.Y} }

// FromGeomPath pushes the path data in p to s. Closed subpaths end closed,
// all others end open. Drawing commands that follow a close without a
// move begin a new contour at the start of the closed one.
func FromGeomPath(p *path.Data, s Sink) {
	var cur, start Point
	open := false
	begin := func(pt Point) {
		if open {
			s.EndOpenContour(cur.X, cur.Y)
		}
		s.BeginContour(pt.X, pt.Y)
		cur, start, open = pt, pt, true
	}
	coords := p.Coords
	for _, cmd := range p.Cmds {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && !open {
			begin(cur)
		}
		switch cmd {
		case path.CmdMoveTo:
			begin(fromVec(coords[0]))
			coords = coords[1:]
		case path.CmdLineTo:
			p1 := fromVec(coords[0])
			emitLine(s, cur, p1)
			cur, coords = p1, coords[1:]
		case path.CmdQuadTo:
			q := QuadBez{cur, fromVec(coords[0]), fromVec(coords[1])}
			emitQuad(s, q)
			cur, coords = q.P2, coords[2:]
		case path.CmdCubeTo:
			c := CubicBez{cur, fromVec(coords[0]), fromVec(coords[1]), fromVec(coords[2])}
			emitCubic(s, c)
			cur, coords = c.P3, coords[3:]
		case path.CmdClose:
			if open {
				s.EndClosedContour(cur.X, cur.Y)
				open = false
			}
			cur = start
		default:
			panic(fmt.Sprintf("unhandled case %v", cmd))
		}
	}
	if open {
		s.EndOpenContour(cur.X, cur.Y)
	}
}

// GeomBuilder is a sink that records path data as a [path.Data]. The
// format has no conics, so the builder approximates them by cubics
// according to Opts.
type GeomBuilder struct {
	Data *path.Data
	Opts ApproxOptions
}

var _ Sink = (*GeomBuilder)(nil)

// NewGeomBuilder returns a builder for a new, empty path.
func NewGeomBuilder(opts ApproxOptions) *GeomBuilder {
	return &GeomBuilder{Data: &path.Data{}, Opts: opts}
}

func (b *GeomBuilder) BeginContour(x0, y0 float64) {
	b.Data.MoveTo(vec.Vec2{X: x0, Y: y0})
}

func (b *GeomBuilder) EndOpenContour(x0, y0 float64) {}

func (b *GeomBuilder) EndClosedContour(x0, y0 float64) {
	b.Data.Close()
}

func (b *GeomBuilder) LinearSegment(x0, y0, x1, y1 float64) {
	b.Data.LineTo(vec.Vec2{X: x1, Y: y1})
}

func (b *GeomBuilder) QuadraticSegment(x0, y0, x1, y1, x2, y2 float64) {
	b.Data.QuadTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2})
}

func (b *GeomBuilder) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float64) {
	ApproximateConic(RationalQuadBez{Pt(x0, y0), HPt(x1, y1, w1), Pt(x2, y2)}, b.Opts, b)
}

func (b *GeomBuilder) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	b.Data.CubeTo(toVec(Pt(x1, y1)), toVec(Pt(x2, y2)), toVec(Pt(x3, y3)))
}
