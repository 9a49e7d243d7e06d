// Package catalog_test validates the generation pipeline: piece identity,
// cadence callbacks, cancellation, determinism and cosmetic regeneration.
package catalog_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pieceworks/jigsaw/catalog"
	"github.com/pieceworks/jigsaw/grid"
	"github.com/pieceworks/jigsaw/raster"
)

// gradientImage gives every pixel a distinct color so asset comparisons are
// meaningful.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 0xff,
			})
		}
	}

	return img
}

func TestGenerate_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := catalog.Generate(ctx, nil, 6)
	require.ErrorIs(t, err, catalog.ErrNilImage)

	_, err = catalog.Generate(ctx, gradientImage(60, 40), 0)
	require.ErrorIs(t, err, grid.ErrBadCount)

	_, err = catalog.Generate(ctx, image.NewNRGBA(image.Rect(0, 0, 0, 0)), 6)
	require.ErrorIs(t, err, raster.ErrBadImageSize)
}

func TestGenerate_PieceIdentity(t *testing.T) {
	c, err := catalog.Generate(context.Background(), gradientImage(60, 40), 6, catalog.WithSeed(9))
	require.NoError(t, err)

	g := c.Grid()
	require.Equal(t, 6, g.Count)
	require.Equal(t, 2, g.Rows, "aspect 1.5 picks 2×3")
	require.Equal(t, 3, g.Cols)
	require.Equal(t, 6, c.Len())
	require.Equal(t, int64(9), c.Seed())

	for id := 0; id < 6; id++ {
		p := c.Piece(id)
		require.NotNil(t, p)
		require.Equal(t, id, p.ID)
		require.Equal(t, id, p.Row*g.Cols+p.Col)
		require.Zero(t, p.Rotation)
		require.False(t, p.Placed)
		require.NotNil(t, p.Assets.Outline)
		require.NotNil(t, p.Assets.Base)
		require.NotNil(t, p.Assets.Rect)
		require.Equal(t, p.Geo.OutW, p.Assets.Outline.Bounds().Dx())
		require.Equal(t, p.Geo.TileW, p.Assets.Rect.Bounds().Dx())
	}

	require.Nil(t, c.Piece(-1))
	require.Nil(t, c.Piece(6))
}

func TestGenerate_Cadence(t *testing.T) {
	var progress []catalog.Progress
	yields := 0

	// 36 pieces on a 120×120 image: 6×6 grid, small tiles, fast to render.
	c, err := catalog.Generate(context.Background(), gradientImage(120, 120), 36,
		catalog.WithSeed(4),
		catalog.WithProgress(func(p catalog.Progress) { progress = append(progress, p) }),
		catalog.WithYield(func() { yields++ }),
	)
	require.NoError(t, err)
	require.Equal(t, 36, c.Len())

	// Progress every 12 pieces plus completion (36 is both).
	require.Equal(t, []catalog.Progress{
		{Done: 12, Total: 36},
		{Done: 24, Total: 36},
		{Done: 36, Total: 36},
	}, progress)
	// Yield every 24 pieces.
	require.Equal(t, 1, yields)
}

func TestGenerate_ProgressOnCompletionOnly(t *testing.T) {
	var progress []catalog.Progress
	_, err := catalog.Generate(context.Background(), gradientImage(60, 40), 6,
		catalog.WithProgress(func(p catalog.Progress) { progress = append(progress, p) }))
	require.NoError(t, err)
	require.Equal(t, []catalog.Progress{{Done: 6, Total: 6}}, progress)
}

func TestGenerate_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := catalog.Generate(ctx, gradientImage(60, 40), 6)
	require.ErrorIs(t, err, catalog.ErrGenerationAborted)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, c, "no partial catalog may escape")
}

func TestGenerate_Deterministic(t *testing.T) {
	img := gradientImage(90, 60)
	a, err := catalog.Generate(context.Background(), img, 12, catalog.WithSeed(31))
	require.NoError(t, err)
	b, err := catalog.Generate(context.Background(), img, 12, catalog.WithSeed(31))
	require.NoError(t, err)

	for id := 0; id < a.Len(); id++ {
		require.True(t, bytes.Equal(a.Piece(id).Assets.Outline.Pix, b.Piece(id).Assets.Outline.Pix),
			"piece %d must be pixel-identical across runs with the same seed", id)
	}

	c, err := catalog.Generate(context.Background(), img, 12, catalog.WithSeed(32))
	require.NoError(t, err)
	same := true
	for id := 0; id < a.Len() && same; id++ {
		same = bytes.Equal(a.Piece(id).Assets.Outline.Pix, c.Piece(id).Assets.Outline.Pix)
	}
	require.False(t, same, "a different seed must reshuffle geometry")
}

func TestRestyle_CosmeticOnly(t *testing.T) {
	img := gradientImage(90, 60)
	c, err := catalog.Generate(context.Background(), img, 6, catalog.WithSeed(17))
	require.NoError(t, err)

	// Simulate play state that must survive the restyle.
	p := c.Piece(4)
	p.Rotation = 90
	p.Placed = true
	before := append([]uint8(nil), p.Assets.Outline.Pix...)

	style := raster.Style{
		OutlineColor: color.NRGBA{R: 0xff, A: 0xff},
		OutlineWidth: 3,
		OutlineAlpha: 1,
	}
	require.NoError(t, c.Restyle(context.Background(), img, style))

	require.Equal(t, 90, p.Rotation)
	require.True(t, p.Placed)
	require.Equal(t, style, c.Style())
	require.False(t, bytes.Equal(before, p.Assets.Outline.Pix),
		"a thicker red outline must change the rendered pixels")
}

func TestRestyle_Validation(t *testing.T) {
	img := gradientImage(60, 40)
	c, err := catalog.Generate(context.Background(), img, 6)
	require.NoError(t, err)

	err = c.Restyle(context.Background(), nil, raster.DefaultStyle())
	require.ErrorIs(t, err, catalog.ErrNilImage)

	err = c.Restyle(context.Background(), gradientImage(61, 40), raster.DefaultStyle())
	require.ErrorIs(t, err, catalog.ErrImageMismatch)

	bad := raster.DefaultStyle()
	bad.OutlineAlpha = 0
	err = c.Restyle(context.Background(), img, bad)
	require.ErrorIs(t, err, raster.ErrBadOutlineAlpha)
}
