package contour

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/pieceworks/jigsaw/edgespec"
)

// Build constructs the closed contour of one piece from its four resolved
// edge specs (Top, Right, Bottom, Left — the order PieceEdges returns).
//
// The path starts at the tile's top-left corner (Pad, Pad) and traces the
// four edges clockwise as one continuous subpath. The pad doubles as the tab
// depth budget, so protrusions never leave the canvas.
func Build(edges [4]edgespec.Spec, geo Geometry) (*path.Data, error) {
	if err := geo.validate(); err != nil {
		return nil, err
	}

	tl := vec.Vec2{X: geo.Pad, Y: geo.Pad}
	tr := vec.Vec2{X: geo.Pad + geo.TileW, Y: geo.Pad}
	br := vec.Vec2{X: geo.Pad + geo.TileW, Y: geo.Pad + geo.TileH}
	bl := vec.Vec2{X: geo.Pad, Y: geo.Pad + geo.TileH}
	tab := geo.Pad

	p := (&path.Data{}).MoveTo(tl)
	p = buildEdge(p, tl, tr, edges[edgespec.Top], tab)
	p = buildEdge(p, tr, br, edges[edgespec.Right], tab)
	p = buildEdge(p, br, bl, edges[edgespec.Bottom], tab)
	p = buildEdge(p, bl, tl, edges[edgespec.Left], tab)

	return p.Close(), nil
}

// buildEdge appends one edge, traced from `from` to `to`, to the path.
//
// Landmarks along the edge (s = distance from `from`, t = signed depth along
// the outward normal, positive values protrude out of the tile):
//
//	0 ──── 28%·L ── base ╮ shoulder ╮ neck → tip → neck ╭ shoulder ╭ base ── 72%·L ──── L
//
// The tab center sits at L*(0.5 + skew*0.06); the group of four cubics is
// symmetric about it. The straight-run landmarks are skipped when the tab
// base crosses them (wide heads on short edges).
func buildEdge(p *path.Data, from, to vec.Vec2, sp edgespec.Spec, tab float64) *path.Data {
	if sp.Flat() {
		return p.LineTo(to)
	}

	chord := to.Sub(from)
	l := chord.Length()
	dir := chord.Mul(1 / l)
	// Outward normal for a clockwise trace in image coordinates (y down).
	norm := vec.Vec2{X: dir.Y, Y: -dir.X}

	amp := clamp(tab*ampScale, tab*ampMinFrac, tab*ampMaxFrac) * float64(sp.Sign)
	center := l * (0.5 + clamp(sp.SkewF, -1, 1)*skewShift)
	head := clamp(l*headScale*sp.WidthF, l*headMinFrac, l*headMaxFrac)
	neck := clamp(head*neckScale*sp.NeckF, head*neckMinFrac, head*neckMaxFrac)

	at := func(s, t float64) vec.Vec2 {
		return from.Add(dir.Mul(s)).Add(norm.Mul(t))
	}

	baseA := center - head/2
	baseB := center + head/2

	if run := runFrac * l; baseA > run {
		p = p.LineTo(at(run, 0))
	}
	p = p.LineTo(at(baseA, 0))

	// Shoulder in: base → neck start.
	p = p.CubeTo(
		at(center-head*shoulderCtl1Head, 0),
		at(center-neck*shoulderCtl2Neck, shoulderCtl2Rise*amp),
		at(center-neck/2, neckBaseRise*amp))
	// Neck into the tip; the flare control reaches past the neck to form the bulb.
	p = p.CubeTo(
		at(center-neck*neckCtl1Neck, neckCtl1Rise*amp),
		at(center-head*tipCtlHead, amp),
		at(center, amp))
	// Mirror: tip back out through the neck.
	p = p.CubeTo(
		at(center+head*tipCtlHead, amp),
		at(center+neck*neckCtl1Neck, neckCtl1Rise*amp),
		at(center+neck/2, neckBaseRise*amp))
	// Shoulder out: neck end → base.
	p = p.CubeTo(
		at(center+neck*shoulderCtl2Neck, shoulderCtl2Rise*amp),
		at(center+head*shoulderCtl1Head, 0),
		at(baseB, 0))

	if run := (1 - runFrac) * l; baseB < run {
		p = p.LineTo(at(run, 0))
	}

	return p.LineTo(to)
}
