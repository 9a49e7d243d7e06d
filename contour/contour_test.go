// Package contour_test validates contour construction: closure, flat edges,
// canvas bounds, and the complementarity of shared boundary curves.
package contour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/pieceworks/jigsaw/contour"
	"github.com/pieceworks/jigsaw/edgespec"
	"github.com/pieceworks/jigsaw/grid"
)

func TestBuild_RejectsBadGeometry(t *testing.T) {
	var edges [4]edgespec.Spec
	for _, geo := range []contour.Geometry{
		{TileW: 0, TileH: 10, Pad: 2},
		{TileW: 10, TileH: -1, Pad: 2},
		{TileW: 10, TileH: 10, Pad: -0.5},
	} {
		_, err := contour.Build(edges, geo)
		require.ErrorIs(t, err, contour.ErrBadGeometry, "geo=%+v", geo)
	}
}

func TestBuild_AllFlatIsRectangle(t *testing.T) {
	var edges [4]edgespec.Spec // all flat
	geo := contour.Geometry{TileW: 100, TileH: 60, Pad: 12}

	p, err := contour.Build(edges, geo)
	require.NoError(t, err)

	pts := contour.Flatten(p, 0.1)
	require.Equal(t, 5, len(pts), "rectangle: 4 corners + closing point")
	require.Equal(t, vec.Vec2{X: 12, Y: 12}, pts[0])
	require.Equal(t, vec.Vec2{X: 112, Y: 12}, pts[1])
	require.Equal(t, vec.Vec2{X: 112, Y: 72}, pts[2])
	require.Equal(t, vec.Vec2{X: 12, Y: 72}, pts[3])
	require.Equal(t, pts[0], pts[4])
}

// TestBuild_ClosedAndInCanvas builds every piece of a seeded 3×4 puzzle and
// checks the contour is closed and never leaves the padded canvas.
func TestBuild_ClosedAndInCanvas(t *testing.T) {
	g := grid.Grid{Rows: 3, Cols: 4, Count: 12}
	set, err := edgespec.New(g, 77)
	require.NoError(t, err)
	geo := contour.Geometry{TileW: 90, TileH: 70, Pad: 14}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			edges, err := set.PieceEdges(r, c)
			require.NoError(t, err)
			p, err := contour.Build(edges, geo)
			require.NoError(t, err)

			pts := contour.Flatten(p, 0.1)
			require.NotEmpty(t, pts)
			require.Equal(t, pts[0], pts[len(pts)-1], "contour must close")

			for _, pt := range pts {
				require.GreaterOrEqual(t, pt.X, -1e-9)
				require.GreaterOrEqual(t, pt.Y, -1e-9)
				require.LessOrEqual(t, pt.X, geo.OutW()+1e-9)
				require.LessOrEqual(t, pt.Y, geo.OutH()+1e-9)
			}
		}
	}
}

// TestBuild_TabLeavesTileRect checks that a protruding edge actually crosses
// the tile rectangle while an indenting one stays inside it.
func TestBuild_TabLeavesTileRect(t *testing.T) {
	geo := contour.Geometry{TileW: 100, TileH: 100, Pad: 15}
	sp := edgespec.Spec{Sign: 1, WidthF: 1, NeckF: 1, SkewF: 0}

	from := vec.Vec2{X: geo.Pad, Y: geo.Pad}
	to := vec.Vec2{X: geo.Pad + geo.TileW, Y: geo.Pad}

	pts := contour.Flatten(contour.EdgePathForTest(from, to, sp, geo.Pad), 0.05)
	minY := math.Inf(1)
	for _, pt := range pts {
		minY = math.Min(minY, pt.Y)
	}
	// Protrusion reaches amp = 0.92*pad above the tile top edge.
	require.Less(t, minY, geo.Pad-0.5*geo.Pad)
	require.GreaterOrEqual(t, minY, -1e-9)

	sp.Sign = -1
	pts = contour.Flatten(contour.EdgePathForTest(from, to, sp, geo.Pad), 0.05)
	maxY := math.Inf(-1)
	for _, pt := range pts {
		maxY = math.Max(maxY, pt.Y)
	}
	require.Greater(t, maxY, geo.Pad+0.5*geo.Pad)
}

// TestBuild_Complementarity traces one boundary from both sides: the
// neighbor sees negated sign and skew and traverses in the opposite
// direction. The two polylines must coincide point-for-point.
func TestBuild_Complementarity(t *testing.T) {
	const tab = 13.0
	specs := []edgespec.Spec{
		{Sign: 1, WidthF: 1.0, NeckF: 1.0, SkewF: 0},
		{Sign: -1, WidthF: 0.95, NeckF: 1.08, SkewF: 0.7},
		{Sign: 1, WidthF: 1.05, NeckF: 0.92, SkewF: -1},
		{Sign: -1, WidthF: 0.92, NeckF: 1.12, SkewF: 0.33},
	}

	a := vec.Vec2{X: 40, Y: 10}
	b := vec.Vec2{X: 40, Y: 130} // vertical boundary of length 120

	for _, sp := range specs {
		inv := edgespec.Spec{Sign: -sp.Sign, WidthF: sp.WidthF, NeckF: sp.NeckF, SkewF: -sp.SkewF}

		fwd := contour.Flatten(contour.EdgePathForTest(a, b, sp, tab), 1e-3)
		rev := contour.Flatten(contour.EdgePathForTest(b, a, inv, tab), 1e-3)

		require.Equal(t, len(fwd), len(rev), "spec=%+v", sp)
		n := len(fwd)
		for i, pt := range fwd {
			mirror := rev[n-1-i]
			require.InDelta(t, pt.X, mirror.X, 1e-6, "spec=%+v i=%d", sp, i)
			require.InDelta(t, pt.Y, mirror.Y, 1e-6, "spec=%+v i=%d", sp, i)
		}
	}
}

// TestBuild_SkewShiftsTabCenter verifies the tab center moves with the skew
// factor: ±6% of the edge length around the midpoint.
func TestBuild_SkewShiftsTabCenter(t *testing.T) {
	const tab = 12.0
	from := vec.Vec2{X: 0, Y: 0}
	to := vec.Vec2{X: 200, Y: 0}

	tipX := func(skew float64) float64 {
		sp := edgespec.Spec{Sign: 1, WidthF: 1, NeckF: 1, SkewF: skew}
		pts := contour.Flatten(contour.EdgePathForTest(from, to, sp, tab), 1e-3)
		bestX, bestY := 0.0, math.Inf(1)
		for _, pt := range pts {
			if pt.Y < bestY {
				bestX, bestY = pt.X, pt.Y
			}
		}

		return bestX
	}

	require.InDelta(t, 100.0, tipX(0), 1.0)
	require.InDelta(t, 112.0, tipX(1), 1.0)  // 0.5+0.06 → 56% of 200
	require.InDelta(t, 88.0, tipX(-1), 1.0)  // 0.5-0.06 → 44% of 200
	require.InDelta(t, 106.0, tipX(0.5), 1.0)
}

func TestFlatten_NilAndDefaults(t *testing.T) {
	require.Nil(t, contour.Flatten(nil, 0.1))

	// tol ≤ 0 falls back to the default without panicking.
	geo := contour.Geometry{TileW: 50, TileH: 50, Pad: 8}
	sp := [4]edgespec.Spec{{Sign: 1, WidthF: 1, NeckF: 1}}
	p, err := contour.Build(sp, geo)
	require.NoError(t, err)
	require.NotEmpty(t, contour.Flatten(p, 0))
}
