package vpath

import "math"

// smallestNormal is the smallest positive normal float64.
const smallestNormal = 0x1p-1022

// Epsilon holds the tolerances behind the package's almost-zero,
// almost-equal and almost-one predicates. The zero value selects
// [DefaultEpsilon].
type Epsilon struct {
	// Magnitudes strictly below Zero are treated as zero. A value of 0
	// selects the smallest normal float64, so that only denormals and zero
	// itself count.
	Zero float64 `toml:"zero"`
	// Two values are almost equal if their difference is within ULP units
	// of machine epsilon relative to their sum. A value of 0 selects 8.
	ULP int `toml:"ulp"`
}

// DefaultEpsilon is the tolerance used when none is configured.
var DefaultEpsilon = Epsilon{Zero: smallestNormal, ULP: 8}

func (eps Epsilon) zero() float64 {
	if eps.Zero <= 0 {
		return smallestNormal
	}
	return eps.Zero
}

func (eps Epsilon) ulp() float64 {
	if eps.ULP <= 0 {
		return 8
	}
	return float64(eps.ULP)
}

// IsZero reports whether |f| is below the zero threshold.
func (eps Epsilon) IsZero(f float64) bool {
	return math.Abs(f) < eps.zero()
}

// IsRelativelyZero reports whether a is negligible relative to b.
func (eps Epsilon) IsRelativelyZero(a, b float64) bool {
	return math.Abs(a) <= 0x1p-52*math.Abs(b)*eps.ulp()
}

// IsEqual reports whether a and b are equal up to the configured number of
// ULPs, or whether their difference is almost zero.
func (eps Epsilon) IsEqual(a, b float64) bool {
	return eps.IsRelativelyZero(a-b, a+b) || eps.IsZero(a-b)
}

// IsOne reports whether f is almost 1.
func (eps Epsilon) IsOne(f float64) bool {
	return math.Abs(f-1) <= 0x1p-52*math.Abs(f+1)*eps.ulp()
}

// IsEqualPoints reports whether both coordinates of a and b are almost equal.
func (eps Epsilon) IsEqualPoints(a, b Point) bool {
	return eps.IsEqual(a.X, b.X) && eps.IsEqual(a.Y, b.Y)
}
