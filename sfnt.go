package vpath

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func fromFixed(p fixed.Point26_6) Point {
	return Point{fixedToFloat(p.X), fixedToFloat(p.Y)}
}

// FromGlyphSegments pushes a glyph outline, as returned by
// [sfnt.Font.LoadGlyph], to s. Glyph contours are always closed; the closing
// segment is implied, see [CloseContours].
//
// Coordinates are converted from 26.6 fixed point to float64 and keep
// sfnt's orientation, which is y-down.
func FromGlyphSegments(segs sfnt.Segments, s Sink) {
	var cur Point
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				s.EndClosedContour(cur.X, cur.Y)
			}
			cur = fromFixed(seg.Args[0])
			s.BeginContour(cur.X, cur.Y)
			open = true
		case sfnt.SegmentOpLineTo:
			p1 := fromFixed(seg.Args[0])
			emitLine(s, cur, p1)
			cur = p1
		case sfnt.SegmentOpQuadTo:
			q := QuadBez{cur, fromFixed(seg.Args[0]), fromFixed(seg.Args[1])}
			emitQuad(s, q)
			cur = q.P2
		case sfnt.SegmentOpCubeTo:
			c := CubicBez{cur, fromFixed(seg.Args[0]), fromFixed(seg.Args[1]), fromFixed(seg.Args[2])}
			emitCubic(s, c)
			cur = c.P3
		default:
			panic(fmt.Sprintf("unhandled case %v", seg.Op))
		}
	}
	if open {
		s.EndClosedContour(cur.X, cur.Y)
	}
}
