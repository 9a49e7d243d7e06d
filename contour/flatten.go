package contour

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the default curve flattening tolerance in output
// pixels. 0.25 is below the threshold of visual perception.
const DefaultFlatness = 0.25

// Flatten converts a path into a polyline with maximum deviation tol from
// the true curves. Close commands append the subpath start point, so a
// closed contour yields a closed polygon (last point equals the first).
// A tol ≤ 0 selects DefaultFlatness.
func Flatten(p *path.Data, tol float64) []vec.Vec2 {
	if p == nil {
		return nil
	}
	if tol <= 0 {
		tol = DefaultFlatness
	}

	var pts []vec.Vec2
	var current, subpath vec.Vec2

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++
			pts = append(pts, current)

		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			coordIdx++
			pts = append(pts, current)

		case path.CmdQuadTo:
			c, end := p.Coords[coordIdx], p.Coords[coordIdx+1]
			coordIdx += 2
			pts = flattenQuadratic(pts, current, c, end, tol)
			current = end

		case path.CmdCubeTo:
			c1, c2, end := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			coordIdx += 3
			pts = flattenCubic(pts, current, c1, c2, end, tol)
			current = end

		case path.CmdClose:
			if current != subpath {
				pts = append(pts, subpath)
			}
			current = subpath
		}
	}

	return pts
}

// flattenQuadratic appends the quadratic Bézier p0→p2 (control p1) as line
// segment endpoints. The segment count follows from the curve's deviation
// vector e = (P0 - 2P1 + P2)/4.
func flattenQuadratic(pts []vec.Vec2, p0, p1, p2 vec.Vec2, tol float64) []vec.Vec2 {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > tol {
		n = int(math.Ceil(math.Sqrt(errLen / tol)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		pts = append(pts, pt)
	}

	return pts
}

// flattenCubic appends the cubic Bézier p0→p3 (controls p1, p2) as line
// segment endpoints. The segment count uses Wang's formula:
// n = ceil(sqrt(3·m / (4·tol))) with m = max(|P0-2P1+P2|, |P1-2P2+P3|).
func flattenCubic(pts []vec.Vec2, p0, p1, p2, p3 vec.Vec2, tol float64) []vec.Vec2 {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	m := math.Max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * tol)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t))
		pts = append(pts, pt)
	}

	return pts
}
