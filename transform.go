package vpath

import "math"

// Transform is a planar projective transformation. Every transform can be
// expressed as a [Projective] without loss; the more specific types exist so
// that common cases are cheap to apply and compose.
type Transform interface {
	// Apply maps an affine point.
	Apply(pt Point) Point
	// ApplyH maps a homogeneous point. The weight of the result is the
	// weight the point carries after the transformation.
	ApplyH(p HPoint) HPoint
	// Projective returns the 3×3 matrix of the transform.
	Projective() Projective
}

// AffineTransform is implemented by transforms that map the line at
// infinity to itself. They never change the weights of homogeneous points.
type AffineTransform interface {
	Transform
	Affine() Affine
}

var (
	_ AffineTransform = Identity{}
	_ AffineTransform = Translation{}
	_ AffineTransform = Rotation{}
	_ AffineTransform = Scaling{}
	_ AffineTransform = Linear{}
	_ AffineTransform = Affine{}
	_ Transform       = Projective{}
)

// Compose returns the transform that applies first and then second.
//
// The result is an [Affine] when both arguments are affine and a
// [Projective] otherwise.
func Compose(first, second Transform) Transform {
	a, ok1 := first.(AffineTransform)
	b, ok2 := second.(AffineTransform)
	if ok1 && ok2 {
		return b.Affine().Mul(a.Affine())
	}
	return second.Projective().Mul(first.Projective())
}

// Identity is the identity transform. It reproduces coordinates exactly.
type Identity struct{}

func (Identity) Apply(pt Point) Point { return pt }
func (Identity) ApplyH(p HPoint) HPoint { return p }
func (Identity) Affine() Affine { return Affine{1, 0, 0, 1, 0, 0} }
func (Identity) Projective() Projective { return identityProjective }
func (Identity) Invert() Identity { return Identity{} }
func (Identity) Determinant() float64 { return 1 }
func (Identity) Mul(o Identity) Identity { return Identity{} }
func (Identity) String() string { return "identity" }

// Translation translates by (TX, TY).
type Translation struct {
	TX, TY float64
}

// Translate creates a translation by v.
func Translate(v Vec2) Translation {
	return Translation{v.X, v.Y}
}

func (tr Translation) Apply(pt Point) Point {
	return Point{pt.X + tr.TX, pt.Y + tr.TY}
}

func (tr Translation) ApplyH(p HPoint) HPoint {
	return HPoint{p.X + tr.TX*p.W, p.Y + tr.TY*p.W, p.W}
}

func (tr Translation) Affine() Affine {
	return Affine{1, 0, 0, 1, tr.TX, tr.TY}
}

func (tr Translation) Projective() Projective {
	return tr.Affine().Projective()
}

// Mul returns the translation by the sum of both offsets.
func (tr Translation) Mul(o Translation) Translation {
	return Translation{tr.TX + o.TX, tr.TY + o.TY}
}

func (tr Translation) Invert() Translation {
	return Translation{-tr.TX, -tr.TY}
}

func (tr Translation) Determinant() float64 { return 1 }

// Rotation is a rotation about the origin, stored as the cosine and sine of
// its angle. A positive angle rotates the positive x axis into the positive y
// axis.
type Rotation struct {
	Cos, Sin float64
}

// Rotate returns a rotation by th radians.
func Rotate(th float64) Rotation {
	sin, cos := math.Sincos(th)
	return Rotation{cos, sin}
}

// RotateDeg returns a rotation by deg degrees.
func RotateDeg(deg float64) Rotation {
	return Rotate(deg * (math.Pi / 180))
}

// Angle returns the rotation angle in radians, in (−π, π].
func (r Rotation) Angle() float64 {
	return math.Atan2(r.Sin, r.Cos)
}

func (r Rotation) Apply(pt Point) Point {
	return Point{r.Cos*pt.X - r.Sin*pt.Y, r.Sin*pt.X + r.Cos*pt.Y}
}

func (r Rotation) ApplyH(p HPoint) HPoint {
	return HPoint{r.Cos*p.X - r.Sin*p.Y, r.Sin*p.X + r.Cos*p.Y, p.W}
}

func (r Rotation) Linear() Linear {
	return Linear{r.Cos, -r.Sin, r.Sin, r.Cos}
}

func (r Rotation) Affine() Affine {
	return r.Linear().Affine()
}

func (r Rotation) Projective() Projective {
	return r.Affine().Projective()
}

// Mul returns the rotation by the sum of both angles.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{
		r.Cos*o.Cos - r.Sin*o.Sin,
		r.Sin*o.Cos + r.Cos*o.Sin,
	}
}

// Invert returns the rotation by the negated angle, assuming r is
// normalized.
func (r Rotation) Invert() Rotation {
	return Rotation{r.Cos, -r.Sin}
}

func (r Rotation) Determinant() float64 {
	return r.Cos*r.Cos + r.Sin*r.Sin
}

// Scaling scales by SX along the x axis and SY along the y axis.
type Scaling struct {
	SX, SY float64
}

// Scale creates a scaling by (sx, sy).
func Scale(sx, sy float64) Scaling {
	return Scaling{sx, sy}
}

func (s Scaling) Apply(pt Point) Point {
	return Point{s.SX * pt.X, s.SY * pt.Y}
}

func (s Scaling) ApplyH(p HPoint) HPoint {
	return HPoint{s.SX * p.X, s.SY * p.Y, p.W}
}

func (s Scaling) Linear() Linear {
	return Linear{s.SX, 0, 0, s.SY}
}

func (s Scaling) Affine() Affine {
	return Affine{s.SX, 0, 0, s.SY, 0, 0}
}

func (s Scaling) Projective() Projective {
	return s.Affine().Projective()
}

func (s Scaling) Mul(o Scaling) Scaling {
	return Scaling{s.SX * o.SX, s.SY * o.SY}
}

// Invert produces infinities when a scale factor is zero.
func (s Scaling) Invert() Scaling {
	return Scaling{1 / s.SX, 1 / s.SY}
}

func (s Scaling) Determinant() float64 {
	return s.SX * s.SY
}

// Linear is a general linear transformation with the matrix
//
//	| A B |
//	| C D |
//
// acting on column vectors, so x' = A x + B y and y' = C x + D y.
type Linear struct {
	A, B, C, D float64
}

func (l Linear) Apply(pt Point) Point {
	return Point{l.A*pt.X + l.B*pt.Y, l.C*pt.X + l.D*pt.Y}
}

func (l Linear) ApplyH(p HPoint) HPoint {
	return HPoint{l.A*p.X + l.B*p.Y, l.C*p.X + l.D*p.Y, p.W}
}

func (l Linear) Affine() Affine {
	return Affine{l.A, l.C, l.B, l.D, 0, 0}
}

func (l Linear) Projective() Projective {
	return l.Affine().Projective()
}

// Mul computes the matrix product l·o, which applies o first.
func (l Linear) Mul(o Linear) Linear {
	return Linear{
		l.A*o.A + l.B*o.C, l.A*o.B + l.B*o.D,
		l.C*o.A + l.D*o.C, l.C*o.B + l.D*o.D,
	}
}

func (l Linear) Transpose() Linear {
	return Linear{l.A, l.C, l.B, l.D}
}

func (l Linear) Determinant() float64 {
	return l.A*l.D - l.B*l.C
}

// Invert produces NaN values when the determinant is zero.
func (l Linear) Invert() Linear {
	inv := 1 / l.Determinant()
	return Linear{inv * l.D, -inv * l.B, -inv * l.C, inv * l.A}
}
