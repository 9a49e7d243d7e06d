package catalog

import (
	"context"
	"fmt"
	"image"

	"github.com/pieceworks/jigsaw/contour"
	"github.com/pieceworks/jigsaw/edgespec"
	"github.com/pieceworks/jigsaw/grid"
	"github.com/pieceworks/jigsaw/raster"
)

// Generate runs the full pipeline for one puzzle instance: solve the grid
// for the image's aspect ratio, draw the seeded edge specs, then build and
// rasterize every piece.
//
// The batch is all-or-nothing: a cancelled ctx or a failed tile returns an
// error and no catalog. Input errors (bad count, bad image) surface from the
// underlying packages before any piece is rendered.
func Generate(ctx context.Context, src image.Image, count int, opts ...Option) (*Catalog, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if src == nil {
		return nil, ErrNilImage
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, raster.ErrBadImageSize
	}

	g, err := grid.Solve(count, float64(w)/float64(h))
	if err != nil {
		return nil, err
	}

	seed := o.Seed
	if seed == 0 {
		seed = edgespec.DefaultSeed
	}
	set, err := edgespec.New(g, seed)
	if err != nil {
		return nil, err
	}

	layout, err := raster.NewLayout(g, w, h)
	if err != nil {
		return nil, err
	}

	assets, err := renderAssets(ctx, src, set, layout, o)
	if err != nil {
		return nil, err
	}

	geo := layout.PieceGeometry()
	pieces := make([]*Piece, g.Count)
	for id := range pieces {
		row, col := g.CellAt(id)
		pieces[id] = &Piece{ID: id, Row: row, Col: col, Geo: geo, Assets: assets[id]}
	}

	return &Catalog{g: g, seed: seed, style: o.Style, layout: layout, pieces: pieces}, nil
}

// Restyle re-renders every asset with new cosmetic parameters. The stored
// seed reproduces the identical edge geometry; piece identity, rotation and
// placement survive untouched. Like Generate, the swap is all-or-nothing.
//
// Only the Progress and Yield options are consulted; seed and style come
// from the catalog and the style argument.
func (c *Catalog) Restyle(ctx context.Context, src image.Image, style raster.Style, opts ...Option) error {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.Style = style
	if ctx == nil {
		ctx = context.Background()
	}
	if src == nil {
		return ErrNilImage
	}
	b := src.Bounds()
	if b.Dx() != c.layout.SrcW || b.Dy() != c.layout.SrcH {
		return ErrImageMismatch
	}
	if err := style.Validate(); err != nil {
		return err
	}

	set, err := edgespec.New(c.g, c.seed)
	if err != nil {
		return err
	}

	assets, err := renderAssets(ctx, src, set, c.layout, o)
	if err != nil {
		return err
	}

	for id, p := range c.pieces {
		p.Assets = assets[id]
	}
	c.style = style

	return nil
}

// renderAssets rasterizes every piece in id order, honoring the cancellation
// and cadence contract. It returns either the complete asset slice or an
// error — never a partial result.
func renderAssets(ctx context.Context, src image.Image, set *edgespec.Set, layout raster.Layout, o Options) ([]raster.Assets, error) {
	g := set.Grid()
	geo := layout.Geometry()
	total := g.Count

	assets := make([]raster.Assets, total)
	for id := 0; id < total; id++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrGenerationAborted, ctx.Err())
		default:
		}

		row, col := g.CellAt(id)
		edges, err := set.PieceEdges(row, col)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %w", ErrGenerationFailed, id, err)
		}
		cp, err := contour.Build(edges, geo)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %w", ErrGenerationFailed, id, err)
		}
		assets[id], err = raster.RenderPiece(src, layout, row, col, cp, o.Style)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %w", ErrGenerationFailed, id, err)
		}

		done := id + 1
		if o.Yield != nil && done%yieldEvery == 0 {
			o.Yield()
		}
		if o.Progress != nil && (done%progressEvery == 0 || done == total) {
			o.Progress(Progress{Done: done, Total: total})
		}
	}

	return assets, nil
}
