package vpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// SyntaxError is returned by [ParseSVGPath] for malformed path data.
type SyntaxError struct {
	// Offset is the byte offset in the input at which the error was
	// detected.
	Offset int
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("bad path data at offset %d: %s", err.Offset, err.Msg)
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

var svgCmdLens = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// svgBuilder turns SVG commands into protocol calls, recording them in a
// Path.
type svgBuilder struct {
	p     Path
	open  bool
	start Point
	cur   Point
	eps   Epsilon
}

func (b *svgBuilder) begin(pt Point) {
	b.end()
	b.p.BeginContour(pt.X, pt.Y)
	b.open, b.start, b.cur = true, pt, pt
}

// ensure begins a contour at the current point if drawing continues after a
// closepath.
func (b *svgBuilder) ensure() {
	if !b.open {
		b.begin(b.cur)
	}
}

func (b *svgBuilder) end() {
	if b.open {
		b.p.EndOpenContour(b.cur.X, b.cur.Y)
		b.open = false
	}
}

func (b *svgBuilder) close() {
	if b.open {
		b.p.EndClosedContour(b.cur.X, b.cur.Y)
		b.open = false
	}
	b.cur = b.start
}

func (b *svgBuilder) line(p1 Point) {
	b.ensure()
	b.p.LinearSegment(b.cur.X, b.cur.Y, p1.X, p1.Y)
	b.cur = p1
}

func (b *svgBuilder) quad(p1, p2 Point) {
	b.ensure()
	b.p.QuadraticSegment(b.cur.X, b.cur.Y, p1.X, p1.Y, p2.X, p2.Y)
	b.cur = p2
}

func (b *svgBuilder) cubic(p1, p2, p3 Point) {
	b.ensure()
	b.p.CubicSegment(b.cur.X, b.cur.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	b.cur = p3
}

func (b *svgBuilder) arc(rx, ry, rot float64, largeArc, sweep bool, p2 Point) {
	if p2 == b.cur {
		// An arc whose end points coincide is omitted.
		return
	}
	r, ok := ArcToConic(b.cur, rx, ry, rot, largeArc, sweep, p2, b.eps)
	if !ok {
		b.line(p2)
		return
	}
	b.ensure()
	b.p.RationalQuadraticSegment(b.cur.X, b.cur.Y, r.P1.X, r.P1.Y, r.P1.W, p2.X, p2.Y)
	b.cur = p2
}

// ParseSVGPath parses SVG path data, as found in the d attribute of a path
// element, and records it as a [Path]. Elliptical arcs become exact conics,
// see [ArcToConic].
//
// Every moveto begins a new contour and every closepath ends one closed. The
// remaining contours end open.
func ParseSVGPath(s string) (Path, error) {
	b := &svgBuilder{eps: DefaultEpsilon}
	path := []byte(s)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil, nil
	}
	if c := path[i]; c != 'M' && c != 'm' {
		return nil, &SyntaxError{i, "path data should start with a moveto command"}
	}

	var f [7]float64
	// Previous control points, for the smooth commands.
	var q, c Point
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !(path[i] >= '0' && path[i] <= '9' || path[i] == '.' || path[i] == '-' || path[i] == '+') {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := svgCmdLens[CMD]
		if !ok {
			return nil, &SyntaxError{i - 1, fmt.Sprintf("unknown command %q", cmd)}
		}
		for j := range n {
			if CMD == 'A' && (j == 3 || j == 4) {
				// Flags are single digits and may be written without
				// separators.
				switch {
				case i < len(path) && path[i] == '1':
					f[j] = 1
				case i < len(path) && path[i] == '0':
					f[j] = 0
				default:
					return nil, &SyntaxError{i, fmt.Sprintf("arc flags should be 0 or 1 in command %q", cmd)}
				}
				i++
			} else {
				num, m := strconv.ParseFloat(path[i:])
				if m == 0 {
					if repeat && j == 0 && i < len(path) {
						return nil, &SyntaxError{i, fmt.Sprintf("unknown command %q", path[i])}
					}
					return nil, &SyntaxError{i, fmt.Sprintf("expected %d numbers after command %q", n, cmd)}
				}
				f[j] = num
				i += m
			}
			i += skipCommaWhitespace(path[i:])
		}

		p0 := b.cur
		rel := func(x, y float64) Point {
			if 'a' <= cmd && cmd <= 'z' {
				return Pt(p0.X+x, p0.Y+y)
			}
			return Pt(x, y)
		}
		switch CMD {
		case 'M':
			b.begin(rel(f[0], f[1]))
			// Further coordinate pairs are implicit linetos.
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			b.close()
		case 'L':
			b.line(rel(f[0], f[1]))
		case 'H':
			p1 := Pt(f[0], p0.Y)
			if cmd == 'h' {
				p1.X += p0.X
			}
			b.line(p1)
		case 'V':
			p1 := Pt(p0.X, f[0])
			if cmd == 'v' {
				p1.Y += p0.Y
			}
			b.line(p1)
		case 'C':
			c = rel(f[2], f[3])
			b.cubic(rel(f[0], f[1]), c, rel(f[4], f[5]))
		case 'S':
			cp1 := p0
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = Point(Vec2(p0).Mul(2).Sub(Vec2(c)))
			}
			c = rel(f[0], f[1])
			b.cubic(cp1, c, rel(f[2], f[3]))
		case 'Q':
			q = rel(f[0], f[1])
			b.quad(q, rel(f[2], f[3]))
		case 'T':
			cp := p0
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = Point(Vec2(p0).Mul(2).Sub(Vec2(q)))
			}
			q = cp
			b.quad(cp, rel(f[0], f[1]))
		case 'A':
			b.arc(f[0], f[1], f[2], f[3] == 1, f[4] == 1, rel(f[5], f[6]))
		default:
			panic("unreachable")
		}
		prevCmd = cmd
	}
	b.end()
	return b.p, nil
}
