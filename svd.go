package vpath

import "math"

// rotator returns the unit null vector of the symmetric matrix
//
//	| r s |
//	| s t |
//
// as a rotation, using whichever row is better conditioned.
func rotator(r, s, t float64, eps Epsilon) Rotation {
	if math.Abs(r) > math.Abs(t) {
		h := math.Hypot(r, s)
		if eps.IsZero(h) {
			return Rotation{1, 0}
		}
		inv := 1 / h
		return Rotation{s * inv, -r * inv}
	} else {
		h := math.Hypot(t, s)
		if eps.IsZero(h) {
			return Rotation{1, 0}
		}
		inv := 1 / h
		return Rotation{t * inv, -s * inv}
	}
}

// svdCore computes the rotation U and the unsigned singular values of l. It
// also reports whether l is the zero map and whether the smaller singular
// value vanished.
func svdCore(l Linear, eps Epsilon) (u Rotation, s0, s1 float64, zero, rank1 bool) {
	a, b, c, d := l.A, l.B, l.C, l.D
	a2, b2, c2, d2 := a*a, b*b, c*c, d*d
	// The eigenvalues of l·lᵗ are the roots of t² − m·t + p.
	m := a2 + b2 + c2 + d2
	det := b*c - a*d
	p := det * det
	// Square root of the discriminant, free of cancellation.
	disc := math.Hypot(b+c, a-d) * math.Hypot(b-c, a+d)
	if eps.IsZero(m) {
		return Rotation{1, 0}, 0, 0, true, true
	}
	el0 := 0.5 * (m + disc)
	el1 := p / el0
	s0 = math.Sqrt(el0)
	s1 = math.Sqrt(el1)
	u = rotator(a2+b2-el0, a*c+b*d, c2+d2-el0, eps)
	if eps.IsZero(s1) {
		return u, s0, 0, false, true
	}
	return u, s0, s1, false, false
}

// SVD computes the singular value decomposition l = U·S·Vᵗ of a linear map.
//
// U is always a proper rotation. If l reverses orientation, the reflection is
// carried by a negative S.SY, so that Vᵗ is a rotation too. The magnitude of
// S.SX is never smaller than that of S.SY.
//
// When l is (almost) the zero map, SVD returns the identity for U and Vᵗ and a
// zero S. Otherwise Vᵗ is built from the image of U's first column under lᵗ,
// which only divides by the larger singular value.
func SVD(l Linear, eps Epsilon) (Rotation, Scaling, Linear) {
	u, s0, _, zero, rank1 := svdCore(l, eps)
	if zero {
		return u, Scaling{}, Linear{1, 0, 0, 1}
	}
	// First row of Vᵗ is lᵗ·u0 / s0, the second one is perpendicular to it.
	v0 := Vec(l.A*u.Cos+l.C*u.Sin, l.B*u.Cos+l.D*u.Sin)
	v0 = v0.Mul(1 / v0.Hypot())
	vt := Linear{v0.X, v0.Y, -v0.Y, v0.X}
	if rank1 {
		return u, Scaling{s0, 0}, vt
	}
	// The signed smaller singular value is u1ᵗ·l·v1. Its sign carries any
	// reflection.
	v1 := Vec(-v0.Y, v0.X)
	lv1 := Vec(l.A*v1.X+l.B*v1.Y, l.C*v1.X+l.D*v1.Y)
	s1 := -u.Sin*lv1.X + u.Cos*lv1.Y
	return u, Scaling{s0, s1}, vt
}

// SVDUS is like [SVD] but doesn't compute Vᵗ. Both singular values are
// returned unsigned.
func SVDUS(l Linear, eps Epsilon) (Rotation, Scaling) {
	u, s0, s1, _, _ := svdCore(l, eps)
	return u, Scaling{s0, s1}
}

// UniformScale returns the geometric mean of the singular values of the
// linear part of t. This is the factor by which t scales lengths on
// average, and is what a tolerance given in output units must be divided by
// to obtain one in input units.
func UniformScale(t AffineTransform) float64 {
	_, s := SVDUS(t.Affine().Linear(), DefaultEpsilon)
	return math.Sqrt(math.Abs(s.SX * s.SY))
}
