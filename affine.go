package vpath

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	// We represent Affine as a struct instead of an array because Go applies
	// few optimizations to arrays, while structs benefit from SROA.

	N0, N1, N2, N3, N4, N5 float64
}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Skew creates an affine transformation representing a skew.
//
// The x and y parameters represent skew factors for the horizontal and vertical
// directions, respectively.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Affine().Mul(Rotate(th).Affine()).Mul(Translate(c.Negate()).Affine())
}

func (aff Affine) Apply(pt Point) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

func (aff Affine) ApplyH(p HPoint) HPoint {
	return HPoint{
		X: aff.N0*p.X + aff.N2*p.Y + aff.N4*p.W,
		Y: aff.N1*p.X + aff.N3*p.Y + aff.N5*p.W,
		W: p.W,
	}
}

func (aff Affine) Affine() Affine {
	return aff
}

func (aff Affine) Projective() Projective {
	return Projective{
		aff.N0, aff.N2, aff.N4,
		aff.N1, aff.N3, aff.N5,
		0, 0, 1,
	}
}

// Linear returns the linear part of the transform, dropping the translation.
func (aff Affine) Linear() Linear {
	return Linear{aff.N0, aff.N2, aff.N1, aff.N3}
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Translation {
	return Translation{aff.N4, aff.N5}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.N0, 0) ||
		math.IsInf(aff.N1, 0) ||
		math.IsInf(aff.N2, 0) ||
		math.IsInf(aff.N3, 0) ||
		math.IsInf(aff.N4, 0) ||
		math.IsInf(aff.N5, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}

// Projective is a general projective transform. Its coefficients are the
// entries of the matrix
//
//	| N0 N1 N2 |
//	| N3 N4 N5 |
//	| N6 N7 N8 |
//
// in row-major order, acting on column vectors (x, y, w). Note that this is
// a different layout from [Affine].
type Projective struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8 float64
}

var identityProjective = Projective{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Perspective returns the projective transform that maps (x, y) to
// (x, y) / (px·x + py·y + 1).
func Perspective(px, py float64) Projective {
	return Projective{1, 0, 0, 0, 1, 0, px, py, 1}
}

func (pr Projective) ApplyH(p HPoint) HPoint {
	return HPoint{
		X: pr.N0*p.X + pr.N1*p.Y + pr.N2*p.W,
		Y: pr.N3*p.X + pr.N4*p.Y + pr.N5*p.W,
		W: pr.N6*p.X + pr.N7*p.Y + pr.N8*p.W,
	}
}

func (pr Projective) Apply(pt Point) Point {
	return pr.ApplyH(pt.Homogeneous()).Project()
}

func (pr Projective) Projective() Projective {
	return pr
}

// IsAffine reports whether the last row is (0, 0, 1), in which case
// [Projective.ToAffine] is exact.
func (pr Projective) IsAffine() bool {
	return pr.N6 == 0 && pr.N7 == 0 && pr.N8 == 1
}

// ToAffine returns the upper two rows as an [Affine]. The result is only
// meaningful if [Projective.IsAffine] holds. Projective never implements
// [AffineTransform], even when it is affine.
func (pr Projective) ToAffine() Affine {
	return Affine{pr.N0, pr.N3, pr.N1, pr.N4, pr.N2, pr.N5}
}

// Mul computes the matrix product pr·o, which applies o first.
func (pr Projective) Mul(o Projective) Projective {
	return Projective{
		pr.N0*o.N0 + pr.N1*o.N3 + pr.N2*o.N6,
		pr.N0*o.N1 + pr.N1*o.N4 + pr.N2*o.N7,
		pr.N0*o.N2 + pr.N1*o.N5 + pr.N2*o.N8,

		pr.N3*o.N0 + pr.N4*o.N3 + pr.N5*o.N6,
		pr.N3*o.N1 + pr.N4*o.N4 + pr.N5*o.N7,
		pr.N3*o.N2 + pr.N4*o.N5 + pr.N5*o.N8,

		pr.N6*o.N0 + pr.N7*o.N3 + pr.N8*o.N6,
		pr.N6*o.N1 + pr.N7*o.N4 + pr.N8*o.N7,
		pr.N6*o.N2 + pr.N7*o.N5 + pr.N8*o.N8,
	}
}

func (pr Projective) Determinant() float64 {
	return pr.N0*(pr.N4*pr.N8-pr.N5*pr.N7) -
		pr.N1*(pr.N3*pr.N8-pr.N5*pr.N6) +
		pr.N2*(pr.N3*pr.N7-pr.N4*pr.N6)
}

// Adjugate returns the transposed cofactor matrix. Since projective
// transforms are defined up to scale, it is an inverse whenever the
// determinant is non-zero, and it is cheaper and better behaved than
// [Projective.Invert].
func (pr Projective) Adjugate() Projective {
	return Projective{
		pr.N4*pr.N8 - pr.N5*pr.N7,
		pr.N2*pr.N7 - pr.N1*pr.N8,
		pr.N1*pr.N5 - pr.N2*pr.N4,

		pr.N5*pr.N6 - pr.N3*pr.N8,
		pr.N0*pr.N8 - pr.N2*pr.N6,
		pr.N2*pr.N3 - pr.N0*pr.N5,

		pr.N3*pr.N7 - pr.N4*pr.N6,
		pr.N1*pr.N6 - pr.N0*pr.N7,
		pr.N0*pr.N4 - pr.N1*pr.N3,
	}
}

// Invert computes the inverse matrix.
//
// Produces NaN values when the determinant is zero.
func (pr Projective) Invert() Projective {
	adj := pr.Adjugate()
	inv := 1 / pr.Determinant()
	return Projective{
		adj.N0 * inv, adj.N1 * inv, adj.N2 * inv,
		adj.N3 * inv, adj.N4 * inv, adj.N5 * inv,
		adj.N6 * inv, adj.N7 * inv, adj.N8 * inv,
	}
}
