package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
)

// Assets are the three pixel assets of one piece.
//
// Outline is the contour-clipped tile with the stroked outline on a padded
// canvas. Base is the same clip without an outline, overscaled ≈1.5%, used
// as an underlay that hides anti-aliasing seams. Rect is the flat
// rectangular tile crop (no pad, no clip) placed beneath the outlined piece
// so no background shows through at piece boundaries.
type Assets struct {
	Outline *image.RGBA
	Base    *image.RGBA
	Rect    *image.RGBA
}

// RenderPiece rasterizes the assets of piece (row, col).
//
// The source region corresponding to the piece's padded canvas is scaled
// into output space with Catmull-Rom resampling; reads beyond the source
// bounds are clamped and the destination offset compensated. The contour is
// filled into an anti-aliased alpha mask that clips the tile, and the
// outline is stroked along the flattened contour.
func RenderPiece(src image.Image, l Layout, row, col int, cpath *path.Data, style Style) (Assets, error) {
	if src == nil {
		return Assets{}, ErrNilImage
	}
	if src.Bounds().Dx() < 1 || src.Bounds().Dy() < 1 {
		return Assets{}, ErrBadImageSize
	}
	if cpath == nil {
		return Assets{}, ErrNilContour
	}
	if row < 0 || row >= l.Grid.Rows || col < 0 || col >= l.Grid.Cols {
		return Assets{}, ErrOutOfBounds
	}
	if err := style.Validate(); err != nil {
		return Assets{}, err
	}

	outW, outH := l.OutW(), l.OutH()
	// Board-space origin of the padded piece canvas; negative along the
	// outer boundary, where the source read clamping kicks in.
	ox := col*l.TileW - l.Pad
	oy := row*l.TileH - l.Pad

	// (a) outlined piece: clip the scaled tile by the contour, then stroke.
	tile := image.NewRGBA(image.Rect(0, 0, outW, outH))
	l.scaleRegion(tile, src, ox, oy, 1)

	mask := fillMask(cpath, outW, outH, 1)

	outline := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.DrawMask(outline, outline.Bounds(), tile, image.Point{}, mask, image.Point{}, draw.Over)
	strokeOutline(outline, cpath, style)

	// (b) base underlay: same clip, no outline, overscaled about the center.
	baseTile := image.NewRGBA(image.Rect(0, 0, outW, outH))
	l.scaleRegion(baseTile, src, ox, oy, baseOverscale)
	baseMask := fillMask(cpath, outW, outH, baseOverscale)

	base := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.DrawMask(base, base.Bounds(), baseTile, image.Point{}, baseMask, image.Point{}, draw.Over)

	// (c) flat rectangular crop, tile-sized, no pad and no clipping.
	rect := image.NewRGBA(image.Rect(0, 0, l.TileW, l.TileH))
	l.scaleRegionTo(rect, src, col*l.TileW, row*l.TileH, l.TileW, l.TileH, 1)

	return Assets{Outline: outline, Base: base, Rect: rect}, nil
}

// scaleRegion fills dst (a piece canvas) from the source region that maps to
// the board-space rectangle [ox, ox+dstW)×[oy, oy+dstH).
func (l Layout) scaleRegion(dst *image.RGBA, src image.Image, ox, oy int, overscale float64) {
	b := dst.Bounds()
	l.scaleRegionTo(dst, src, ox, oy, b.Dx(), b.Dy(), overscale)
}

// scaleRegionTo maps the board-space region [ox, ox+w)×[oy, oy+h) onto dst.
// An overscale > 1 shrinks the sampled source rectangle about the region
// center, enlarging the content by the same factor. The source rectangle is
// clamped to the image bounds and the destination rectangle is shifted by
// the clamped amount, so border pieces keep their content aligned.
func (l Layout) scaleRegionTo(dst *image.RGBA, src image.Image, ox, oy, w, h int, overscale float64) {
	spx, spy := l.srcPerOut()
	sb := src.Bounds()

	// Desired source rectangle in source pixels (float).
	sx0 := float64(sb.Min.X) + float64(ox)*spx
	sy0 := float64(sb.Min.Y) + float64(oy)*spy
	sx1 := sx0 + float64(w)*spx
	sy1 := sy0 + float64(h)*spy

	if overscale > 1 {
		// Shrink about the center: the same dst then shows a larger view.
		cx, cy := (sx0+sx1)/2, (sy0+sy1)/2
		sx0 = cx + (sx0-cx)/overscale
		sx1 = cx + (sx1-cx)/overscale
		sy0 = cy + (sy0-cy)/overscale
		sy1 = cy + (sy1-cy)/overscale
	}

	// Clamp to the source bounds, remembering how much was cut on each side.
	cutL := math.Max(0, float64(sb.Min.X)-sx0)
	cutT := math.Max(0, float64(sb.Min.Y)-sy0)
	cutR := math.Max(0, sx1-float64(sb.Max.X))
	cutB := math.Max(0, sy1-float64(sb.Max.Y))

	csx0, csy0 := sx0+cutL, sy0+cutT
	csx1, csy1 := sx1-cutR, sy1-cutB
	if csx1 <= csx0 || csy1 <= csy0 {
		return // region entirely outside the source
	}

	// Compensate the destination rectangle by the cut fractions.
	osx := (sx1 - sx0) / float64(w) // source px per dst px, x
	osy := (sy1 - sy0) / float64(h)
	dx0 := int(math.Round(cutL / osx))
	dy0 := int(math.Round(cutT / osy))
	dx1 := w - int(math.Round(cutR/osx))
	dy1 := h - int(math.Round(cutB/osy))
	if dx1 <= dx0 || dy1 <= dy0 {
		return
	}

	sr := image.Rect(
		int(math.Floor(csx0)), int(math.Floor(csy0)),
		int(math.Ceil(csx1)), int(math.Ceil(csy1)))
	sr = sr.Intersect(sb)
	if sr.Empty() {
		return
	}

	draw.CatmullRom.Scale(dst, image.Rect(dx0, dy0, dx1, dy1), src, sr, draw.Src, nil)
}

// fillMask rasterizes the closed contour into an anti-aliased alpha mask,
// optionally scaled about the canvas center.
func fillMask(p *path.Data, w, h int, scale float64) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	cx, cy := float64(w)/2, float64(h)/2
	tx := func(x float64) float32 {
		if scale != 1 {
			x = cx + (x-cx)*scale
		}

		return float32(x)
	}
	ty := func(y float64) float32 {
		if scale != 1 {
			y = cy + (y-cy)*scale
		}

		return float32(y)
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			v := p.Coords[coordIdx]
			coordIdx++
			z.MoveTo(tx(v.X), ty(v.Y))

		case path.CmdLineTo:
			v := p.Coords[coordIdx]
			coordIdx++
			z.LineTo(tx(v.X), ty(v.Y))

		case path.CmdQuadTo:
			c, end := p.Coords[coordIdx], p.Coords[coordIdx+1]
			coordIdx += 2
			z.QuadTo(tx(c.X), ty(c.Y), tx(end.X), ty(end.Y))

		case path.CmdCubeTo:
			c1, c2, end := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			coordIdx += 3
			z.CubeTo(tx(c1.X), ty(c1.Y), tx(c2.X), ty(c2.Y), tx(end.X), ty(end.Y))

		case path.CmdClose:
			z.ClosePath()
		}
	}

	m := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})

	return m
}

// strokeOutline strokes the contour onto dst with the style's color, width
// and opacity.
func strokeOutline(dst *image.RGBA, p *path.Data, style Style) {
	width := style.OutlineWidth
	alpha := style.OutlineAlpha
	if style.OutlineStrong {
		width += strongWidthBoost
		alpha = math.Min(MaxOutlineAlpha, alpha*strongAlphaGain)
	}

	b := dst.Bounds()
	mask := strokeMask(p, b.Dx(), b.Dy(), width)

	r, g, bl, _ := style.OutlineColor.RGBA()
	ink := image.NewUniform(color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(bl >> 8),
		A: uint8(math.Round(alpha * 0xff)),
	})
	draw.DrawMask(dst, b, ink, image.Point{}, mask, image.Point{}, draw.Over)
}
