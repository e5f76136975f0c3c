package vpath_test

import (
	"fmt"
	"math"
	"os"

	"honnef.co/go/vpath"
)

func Example() {
	svg := vpath.NewSVGWriter(os.Stdout, vpath.SVGOptions{})
	chain := vpath.NewXForm(vpath.Translate(vpath.Vec(5, 5)), vpath.NewCloseAllContours(svg))
	chain.BeginContour(0, 0)
	chain.LinearSegment(0, 0, 10, 0)
	chain.LinearSegment(10, 0, 10, 10)
	chain.EndOpenContour(10, 10)
	fmt.Println()
	// Output: M5,5 L15,5 L15,15 L5,5 Z
}

func ExampleParseSVGPath() {
	p, err := vpath.ParseSVGPath("M0,0 h10 v10 z")
	if err != nil {
		panic(err)
	}
	for _, el := range p {
		fmt.Println(el)
	}
	// Output:
	// Begin((0, 0))
	// LineTo((10, 0))
	// LineTo((10, 10))
	// EndClosed
}

func ExampleConicToArc() {
	// A quarter of the unit circle.
	w := math.Sqrt2 / 2
	c := vpath.RationalQuadBez{P0: vpath.Pt(1, 0), P1: vpath.HPt(w, w, w), P2: vpath.Pt(0, 1)}
	conv := vpath.ConicToArc(c, vpath.DefaultEpsilon)
	fmt.Println(conv.Kind)
	fmt.Printf("rx=%.3f ry=%.3f large=%t sweep=%t\n", conv.Arc.RX, conv.Arc.RY, conv.Arc.LargeArc, conv.Arc.Sweep)
	fmt.Printf("%.4f\n", conv.Angle())
	// Output:
	// elliptical
	// rx=1.000 ry=1.000 large=false sweep=true
	// 1.5708
}

func ExampleApproximateConic() {
	// Half of a circle with radius 10.
	c := vpath.RationalQuadBez{P0: vpath.Pt(-10, 0), P1: vpath.HPt(0, 10, 0), P2: vpath.Pt(10, 0)}
	var p vpath.Path
	p.BeginContour(c.P0.X, c.P0.Y)
	rep := vpath.ApproximateConic(c, vpath.ApproxOptions{Tolerance: 1e-3}, &p)
	p.EndOpenContour(c.P2.X, c.P2.Y)
	fmt.Println(rep.Failed(), rep.MaxError <= 1e-3, rep.Segments == len(p)-2)
	// Output: false true true
}

func ExampleSVD() {
	l := vpath.Rotate(0.5).Linear().Mul(vpath.Scale(3, 2).Linear()).Mul(vpath.Rotate(-1).Linear())
	_, s, _ := vpath.SVD(l, vpath.DefaultEpsilon)
	fmt.Printf("%.3f %.3f\n", s.SX, s.SY)
	// Output: 3.000 2.000
}
