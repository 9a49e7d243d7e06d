package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/pieceworks/jigsaw/contour"
)

// zeroLengthThreshold is the minimum length for a stroke segment; shorter
// segments are skipped as degenerate.
const zeroLengthThreshold = 1e-10

// joinSides is the polygon resolution of the round-ish join disk drawn at
// every polyline vertex. Eight sides is visually indistinguishable from a
// circle at outline widths ≤ 3px.
const joinSides = 8

// strokeMask rasterizes the stroked contour into an alpha mask: the path is
// flattened to a polyline, each segment becomes a filled quad of the stroke
// width, and each vertex gets a join disk so corners stay solid.
func strokeMask(p *path.Data, w, h int, width float64) *image.Alpha {
	pts := contour.Flatten(p, contour.DefaultFlatness)
	hw := width / 2

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		seg := b.Sub(a)
		l := seg.Length()
		if l < zeroLengthThreshold {
			continue
		}
		// Perpendicular half-width offset.
		n := vec.Vec2{X: -seg.Y / l * hw, Y: seg.X / l * hw}

		z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		z.ClosePath()
	}

	for _, v := range pts {
		joinDisk(z, v, hw)
	}

	m := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})

	return m
}

// joinDisk adds a small polygon approximating a disk of radius r at v.
func joinDisk(z *vector.Rasterizer, v vec.Vec2, r float64) {
	for i := 0; i <= joinSides; i++ {
		ang := 2 * math.Pi * float64(i) / joinSides
		x := float32(v.X + r*math.Cos(ang))
		y := float32(v.Y + r*math.Sin(ang))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
