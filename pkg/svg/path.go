// Package svg provides a declarative path model for SVG output.
//
// A [Path] is a sequence of subpaths, each a start point followed by drawing
// commands. Paths are built in memory and serialized to an SVG "d" attribute
// string on demand, which keeps geometry inspectable in tests instead of
// being string soup from the start.
//
// Curve interpolation strategies live in this package too: a [Curve] turns an
// ordered point sequence into drawing commands, so chart code can swap linear,
// step, and smoothed interpolation without touching geometry construction.
package svg

import (
	"fmt"
	"strings"
)

// Point is a position in SVG user units.
type Point struct {
	X, Y float64
}

// Command is a single drawing command inside a subpath.
// Op is the SVG path operator ('L', 'Q', 'C', 'A'); Args are its coordinates
// in SVG order.
type Command struct {
	Op   byte
	Args []float64
}

// SubPath is a start point followed by drawing commands, optionally closed.
type SubPath struct {
	Start    Point
	Commands []Command
	Closed   bool
}

// Path is a sequence of subpaths. The zero value is an empty path.
type Path struct {
	SubPaths []SubPath
}

// Empty reports whether the path contains no subpaths.
func (p Path) Empty() bool { return len(p.SubPaths) == 0 }

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.SubPaths = append(p.SubPaths, SubPath{Start: pt})
}

// LineTo appends a straight segment to the current subpath.
// Without an open subpath the call is a no-op.
func (p *Path) LineTo(pt Point) {
	p.append(Command{Op: 'L', Args: []float64{pt.X, pt.Y}})
}

// QuadTo appends a quadratic bezier segment with control point c.
// Without an open subpath the call is a no-op.
func (p *Path) QuadTo(c, pt Point) {
	p.append(Command{Op: 'Q', Args: []float64{c.X, c.Y, pt.X, pt.Y}})
}

// CubicTo appends a cubic bezier segment with control points c1 and c2.
// Without an open subpath the call is a no-op.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.append(Command{Op: 'C', Args: []float64{c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y}})
}

// ArcTo appends an elliptical arc segment with radii rx, ry ending at pt.
// largeArc and sweep select among the four candidate arcs.
// Without an open subpath the call is a no-op.
func (p *Path) ArcTo(rx, ry float64, largeArc, sweep bool, pt Point) {
	p.append(Command{Op: 'A', Args: []float64{
		rx, ry, 0, boolFlag(largeArc), boolFlag(sweep), pt.X, pt.Y,
	}})
}

// Close marks the current subpath as closed.
// Without an open subpath the call is a no-op.
func (p *Path) Close() {
	if n := len(p.SubPaths); n > 0 {
		p.SubPaths[n-1].Closed = true
	}
}

func (p *Path) append(c Command) {
	if n := len(p.SubPaths); n > 0 {
		sp := &p.SubPaths[n-1]
		sp.Commands = append(sp.Commands, c)
	}
}

// String renders the path as an SVG "d" attribute value.
// An empty path renders as the empty string.
func (p Path) String() string {
	var b strings.Builder
	for i, sp := range p.SubPaths {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "M%s,%s", coord(sp.Start.X), coord(sp.Start.Y))
		for _, c := range sp.Commands {
			b.WriteByte(' ')
			b.WriteByte(c.Op)
			for j, a := range c.Args {
				if j > 0 {
					b.WriteByte(',')
				}
				b.WriteString(coord(a))
			}
		}
		if sp.Closed {
			b.WriteString(" Z")
		}
	}
	return b.String()
}

// coord formats a coordinate with two decimals, trimming trailing zeros so
// whole numbers stay short ("12" rather than "12.00").
func coord(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
