// Package contour - geometry carrier, tab shape constants, sentinel errors.
package contour

import "errors"

// ErrBadGeometry indicates non-positive tile dimensions or a negative pad.
var ErrBadGeometry = errors.New("contour: tile dimensions must be positive and pad non-negative")

// Geometry describes one piece's canvas in output pixels.
//
// TileW×TileH is the undeformed tile rectangle; Pad is the margin added on
// every side to make room for protruding tabs. The closed contour lives in
// the (TileW+2·Pad)×(TileH+2·Pad) canvas with the tile at offset (Pad, Pad).
type Geometry struct {
	TileW float64
	TileH float64
	Pad   float64
}

// OutW returns the canvas width TileW + 2·Pad.
func (g Geometry) OutW() float64 { return g.TileW + 2*g.Pad }

// OutH returns the canvas height TileH + 2·Pad.
func (g Geometry) OutH() float64 { return g.TileH + 2*g.Pad }

func (g Geometry) validate() error {
	if g.TileW <= 0 || g.TileH <= 0 || g.Pad < 0 {
		return ErrBadGeometry
	}

	return nil
}

// Tab shape constants. The along-edge positions are fractions of the edge
// length L, the widths are clamped fractions of L (head) and of the head
// (neck), the protrusion depth is a clamped fraction of the pad budget.
const (
	// runFrac places the first straight run at 28% of L (and, mirrored,
	// the last one at 72%).
	runFrac = 0.28

	// skewShift converts the [-1,1] skew factor into a tab-center offset of
	// up to ±6% of L around the midpoint.
	skewShift = 0.06

	// Head width: L*0.42*WidthF clamped to [0.34L, 0.50L].
	headScale   = 0.42
	headMinFrac = 0.34
	headMaxFrac = 0.50

	// Neck width: head*0.34*NeckF clamped to [0.26, 0.42] of the head.
	neckScale   = 0.34
	neckMinFrac = 0.26
	neckMaxFrac = 0.42

	// Protrusion depth: tab*0.92 clamped to [0.78, 1.05] of the tab budget.
	ampScale   = 0.92
	ampMinFrac = 0.78
	ampMaxFrac = 1.05
)

// Bezier control fractions for the shoulder/neck/tip group. Each value is
// symmetric about the tab center, which is what keeps the two sides of a
// boundary tracing the identical curve.
const (
	shoulderCtl1Head = 0.30 // first shoulder control, along-edge, × head
	shoulderCtl2Neck = 0.72 // second shoulder control, along-edge, × neck
	shoulderCtl2Rise = 0.10 // second shoulder control, depth, × amp
	neckBaseRise     = 0.34 // neck endpoint depth, × amp
	neckCtl1Neck     = 0.28 // first neck control, along-edge, × neck
	neckCtl1Rise     = 0.70 // first neck control, depth, × amp
	tipCtlHead       = 0.36 // tip flare control, along-edge, × head
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
