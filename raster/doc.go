// Package raster turns piece contours and a source bitmap into per-piece
// image assets.
//
// What:
//
//   - Layout derives the output pixel geometry for a whole board: the output
//     scale is capped so the longer board dimension stays ≤ 900 pixels, tile
//     sizes are uniform, and the pad is max(6, ⌊0.18·min(tileW,tileH)⌋).
//   - RenderPiece produces three assets per piece:
//     (a) the contour-clipped tile with a stroked outline,
//     (b) a no-outline "base" variant overscaled ≈1.5%, used as an underlay
//     that hides anti-aliasing seams between adjacent placed pieces,
//     (c) a flat rectangular crop used as a placeholder underlay so no
//     background shows through at piece boundaries.
//   - Source-region reads are clamped to the image bounds with the
//     destination offset compensated, so border pieces never read
//     out-of-bounds pixels.
//
// Why:
//
//   - Contour fill and outline stroking go through golang.org/x/image/vector
//     (anti-aliased area coverage); region scaling goes through
//     golang.org/x/image/draw (Catmull-Rom). Both keep the package free of
//     hand-rolled pixel loops.
//   - Assets are plain *image.RGBA values; encoding, caching and display are
//     caller concerns.
//
// Complexity:
//
//   - RenderPiece: O(outW·outH) per asset plus O(k) contour flattening.
//
// Errors:
//
//   - ErrNilImage:        source image is nil or empty.
//   - ErrBadImageSize:    source dimensions are not positive.
//   - ErrNilContour:      contour path is nil.
//   - ErrBadOutlineWidth: style width outside [0.5, 3].
//   - ErrBadOutlineAlpha: style alpha outside [0.1, 1].
//   - ErrOutOfBounds:     piece coordinates outside the layout grid.
package raster
