// Package raster - styles, layout math and sentinel errors.
package raster

import (
	"errors"
	"image/color"
	"math"

	"github.com/pieceworks/jigsaw/contour"
	"github.com/pieceworks/jigsaw/grid"
)

// Sentinel errors for rasterization.
var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("raster: source image is nil")
	// ErrBadImageSize indicates zero or negative source dimensions.
	ErrBadImageSize = errors.New("raster: source dimensions must be positive")
	// ErrNilContour indicates a nil contour path.
	ErrNilContour = errors.New("raster: contour path is nil")
	// ErrBadOutlineWidth indicates an outline width outside [0.5, 3].
	ErrBadOutlineWidth = errors.New("raster: outline width must be in [0.5, 3]")
	// ErrBadOutlineAlpha indicates an outline alpha outside [0.1, 1].
	ErrBadOutlineAlpha = errors.New("raster: outline alpha must be in [0.1, 1]")
	// ErrOutOfBounds indicates piece coordinates outside the layout grid.
	ErrOutOfBounds = errors.New("raster: piece coordinates out of range")
)

// Outline style bounds.
const (
	MinOutlineWidth = 0.5
	MaxOutlineWidth = 3.0
	MinOutlineAlpha = 0.1
	MaxOutlineAlpha = 1.0
)

const (
	// maxBoardDim caps the longer output board dimension in pixels; larger
	// sources are scaled down before tiling so rasterization stays cheap.
	maxBoardDim = 900

	// padFloor and padFrac derive the tab margin from the output tile size:
	// pad = max(padFloor, floor(padFrac*min(tileW, tileH))).
	padFloor = 6
	padFrac  = 0.18

	// baseOverscale is the ≈1.5% enlargement of the no-outline base asset.
	baseOverscale = 1.015

	// strongWidthBoost and strongAlphaGain amplify the outline when the
	// "strong" style flag is set.
	strongWidthBoost = 0.5
	strongAlphaGain  = 2.0
)

// Style carries the cosmetic outline parameters. Changing a Style and
// re-rendering does not alter geometry: contours derive only from the seed.
type Style struct {
	OutlineColor  color.Color
	OutlineWidth  float64 // stroke width in output pixels, [0.5, 3]
	OutlineAlpha  float64 // stroke opacity, [0.1, 1]
	OutlineStrong bool    // amplified stroke for high-contrast images
}

// DefaultStyle returns the standard thin dark outline.
func DefaultStyle() Style {
	return Style{
		OutlineColor: color.NRGBA{A: 0xff},
		OutlineWidth: 1.5,
		OutlineAlpha: 0.6,
	}
}

// Validate checks the style parameter ranges.
func (s Style) Validate() error {
	if s.OutlineWidth < MinOutlineWidth || s.OutlineWidth > MaxOutlineWidth {
		return ErrBadOutlineWidth
	}
	if s.OutlineAlpha < MinOutlineAlpha || s.OutlineAlpha > MaxOutlineAlpha {
		return ErrBadOutlineAlpha
	}

	return nil
}

// Layout is the output pixel geometry of one board. Tiles are uniform so
// every piece shares the same canvas size and contour geometry budget.
type Layout struct {
	Grid       grid.Grid
	SrcW, SrcH int // source image pixels
	TileW      int // output tile width, uniform across the board
	TileH      int // output tile height
	Pad        int // tab margin on every side of a piece canvas
}

// NewLayout computes the output geometry for g over a srcW×srcH image.
func NewLayout(g grid.Grid, srcW, srcH int) (Layout, error) {
	if srcW < 1 || srcH < 1 {
		return Layout{}, ErrBadImageSize
	}
	if g.Rows < 1 || g.Cols < 1 {
		return Layout{}, ErrOutOfBounds
	}

	scale := 1.0
	if longer := math.Max(float64(srcW), float64(srcH)); longer > maxBoardDim {
		scale = maxBoardDim / longer
	}

	tileW := int(math.Round(float64(srcW) * scale / float64(g.Cols)))
	tileH := int(math.Round(float64(srcH) * scale / float64(g.Rows)))
	if tileW < 1 {
		tileW = 1
	}
	if tileH < 1 {
		tileH = 1
	}

	pad := int(math.Floor(padFrac * float64(min(tileW, tileH))))
	if pad < padFloor {
		pad = padFloor
	}

	return Layout{Grid: g, SrcW: srcW, SrcH: srcH, TileW: tileW, TileH: tileH, Pad: pad}, nil
}

// OutW returns the per-piece canvas width TileW + 2·Pad.
func (l Layout) OutW() int { return l.TileW + 2*l.Pad }

// OutH returns the per-piece canvas height TileH + 2·Pad.
func (l Layout) OutH() int { return l.TileH + 2*l.Pad }

// Geometry returns the contour geometry shared by every piece of the board.
func (l Layout) Geometry() contour.Geometry {
	return contour.Geometry{
		TileW: float64(l.TileW),
		TileH: float64(l.TileH),
		Pad:   float64(l.Pad),
	}
}

// srcPerOut returns source pixels per output pixel, per axis. The board's
// output extent maps exactly onto the source image.
func (l Layout) srcPerOut() (x, y float64) {
	return float64(l.SrcW) / float64(l.TileW*l.Grid.Cols),
		float64(l.SrcH) / float64(l.TileH*l.Grid.Rows)
}

// PieceGeometry is the per-piece metadata a renderer needs to position,
// rotate and scale the assets without recomputing geometry.
type PieceGeometry struct {
	OutW  int // padded canvas width
	OutH  int // padded canvas height
	TileW int // undeformed tile width
	TileH int // undeformed tile height
	Pad   int // margin between canvas and tile on every side
}

// PieceGeometry returns the (uniform) per-piece geometry of the layout.
func (l Layout) PieceGeometry() PieceGeometry {
	return PieceGeometry{OutW: l.OutW(), OutH: l.OutH(), TileW: l.TileW, TileH: l.TileH, Pad: l.Pad}
}
