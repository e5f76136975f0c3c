// Package vpath describes, transforms and re-expresses 2D vector paths, so
// that consumers of path data only need to understand a small, uniform set of
// segments.
//
// # The sink protocol
//
// Path data flows through the package as method calls on a [Sink]: a source
// begins a contour, pushes line, quadratic, conic and cubic segments, and ends
// the contour either open or closed. No path is ever materialized unless a
// consumer wants one (see [Path]).
//
// Every call repeats the current point as its leading coordinates. Sinks may
// rely on this, which lets them be stateless; the [Validator] filter checks
// it.
//
// # Filters
//
// A filter is a sink that passes transformed calls on to another sink, its
// downstream. Filters are generic over the type of their downstream, so that
// a chain composed of concrete types is free of dynamic dispatch:
//
//	svg := vpath.NewSVGWriter(os.Stdout, vpath.SVGOptions{})
//	chain := vpath.NewXForm(vpath.Rotate(math.Pi/4),
//		vpath.NewCloseAllContours(
//			vpath.NewConicToCubics(vpath.ApproxOptions{Tolerance: 1e-3}, svg)))
//
// The package provides the following filters:
//
//   - [XForm] applies affine and projective transforms
//   - [CloseContours] makes closed contours end where they began
//   - [ConicToArcs] turns conics into exactly equivalent elliptical arcs
//   - [ConicToCubics] approximates conics by cubics within a tolerance
//   - [Downgrade] replaces segments by simpler ones where that's harmless
//   - [Spy] logs every call
//   - [Validator] checks the protocol
//
// Sinks that understand more than the base protocol, such as elliptical arcs
// ([ArcSink]) or approximation reports ([ApproximationReporter]), are detected
// once, when a filter is constructed, with [ForwardIf].
//
// # Conics
//
// Conic segments are rational quadratic Béziers in canonical form,
// [RationalQuadBez]. Every elliptical arc is one, and so is the image of a
// quadratic Bézier under a projective transform. [ConicToArc] recovers the
// radii and rotation of an elliptical arc from a conic with the analytic
// singular value decomposition in [SVD], and [ArcToConic] goes the other way.
// [ApproximateConic] replaces conics by cubics for consumers that know
// neither.
//
// # Sources and sinks
//
// [ParseSVGPath] reads SVG path data, and [SVGWriter] writes it.
// [FromGeomPath] and [GeomBuilder] connect to seehuhn.de/go/geom paths, and
// [FromGlyphSegments] reads glyph outlines from golang.org/x/image/font/sfnt.
// [BBox] computes bounding boxes.
package vpath
