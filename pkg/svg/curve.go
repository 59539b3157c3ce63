package svg

// Curve draws the boundary described by pts into p as a sequence of path
// commands. The current position of p is assumed to be pts[0]; the curve
// emits commands for pts[1:] only. With fewer than two points a curve draws
// nothing.
//
// Curves must not start a new subpath and must end exactly at the last point,
// so that callers can chain boundaries into a single closed outline.
type Curve func(p *Path, pts []Point)

// CurveLinear connects the points with straight segments.
func CurveLinear(p *Path, pts []Point) {
	for i := 1; i < len(pts); i++ {
		p.LineTo(pts[i])
	}
}

// CurveStep connects the points with axis-aligned steps, switching y at the
// horizontal midpoint between neighbors.
func CurveStep(p *Path, pts []Point) {
	for i := 1; i < len(pts); i++ {
		prev, next := pts[i-1], pts[i]
		mid := (prev.X + next.X) / 2
		p.LineTo(Point{X: mid, Y: prev.Y})
		p.LineTo(Point{X: mid, Y: next.Y})
		p.LineTo(next)
	}
}

// CurveSmooth connects the points with quadratic beziers through segment
// midpoints, giving a rounded line that still passes near every point and
// ends exactly on the last one.
func CurveSmooth(p *Path, pts []Point) {
	if len(pts) < 2 {
		return
	}
	if len(pts) == 2 {
		p.LineTo(pts[1])
		return
	}
	for i := 1; i < len(pts)-1; i++ {
		ctrl := pts[i]
		mid := Point{
			X: (pts[i].X + pts[i+1].X) / 2,
			Y: (pts[i].Y + pts[i+1].Y) / 2,
		}
		p.QuadTo(ctrl, mid)
	}
	p.LineTo(pts[len(pts)-1])
}
