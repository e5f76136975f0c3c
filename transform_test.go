package vpath

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity{}), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Pt(11, 16), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(Compose(a2, a1)), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	p := Pt(3, 4)
	assertNear(t, p.Transform(a).Transform(a.Invert()), p, epsilon)
	assertNear(t, p.Transform(a.Invert()).Transform(a), p, epsilon)
}

func TestProjective(t *testing.T) {
	const epsilon = 1e-9
	pr := Projective{
		1.1, 0.2, 3,
		-0.3, 0.9, -1,
		0.01, 0.02, 1,
	}
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(3, 4), Pt(-7, 2)} {
		assertNear(t, p.Transform(a.Projective()), p.Transform(a), epsilon)
		assertNear(t, p.Transform(pr).Transform(pr.Invert()), p, epsilon)
		assertNear(t, p.Transform(pr).Transform(pr.Adjugate()), p, epsilon)
		assertNear(t, p.Transform(a).Transform(pr), p.Transform(Compose(a, pr)), epsilon)
		assertNear(t, p.Transform(pr).Transform(a), p.Transform(Compose(pr, a)), epsilon)
	}
	if _, ok := Compose(a, pr).(Projective); !ok {
		t.Errorf("composing with a projective transform should produce a Projective")
	}
	if !a.Projective().IsAffine() {
		t.Errorf("the matrix of an affine transform should be affine")
	}
	diff(t, a, a.Projective().ToAffine())
}

func TestPerspective(t *testing.T) {
	pr := Perspective(0.5, 0)
	assertNear(t, Pt(2, 4).Transform(pr), Pt(1, 2), 1e-12)
	// Homogeneous points keep their weights in the transformed result.
	diff(t, HPt(2, 4, 2), pr.ApplyH(HPt(2, 4, 1)))
}

func TestSpecializedTransforms(t *testing.T) {
	const epsilon = 1e-9
	transforms := []AffineTransform{
		Identity{},
		Translate(Vec(3, -2)),
		Rotate(0.7),
		RotateDeg(-135),
		Scale(2, -0.5),
		Linear{1, 2, -3, 0.5},
	}
	for _, tr := range transforms {
		for _, p := range []Point{Pt(1, 0), Pt(-2, 5)} {
			assertNear(t, p.Transform(tr), p.Transform(tr.Affine()), epsilon)
			assertNear(t, p.Transform(tr), p.Transform(tr.Projective()), epsilon)
			h := tr.ApplyH(HPt(p.X*3, p.Y*3, 3))
			if h.W != 3 {
				t.Errorf("%v changed the weight to %v", tr, h.W)
			}
			assertNear(t, h.Project(), p.Transform(tr), epsilon)
		}
	}
	if got := RotateDeg(90).Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, want %v", got, math.Pi/2)
	}
}

func TestUniformScale(t *testing.T) {
	if got := UniformScale(Scale(2, 8)); math.Abs(got-4) > 1e-12 {
		t.Errorf("got %v, want 4", got)
	}
	if got := UniformScale(RotateAbout(1, Pt(3, 4))); math.Abs(got-1) > 1e-12 {
		t.Errorf("got %v, want 1", got)
	}
}
