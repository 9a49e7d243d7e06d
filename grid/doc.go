// Package grid factors a requested piece count into the rows×cols layout
// that best matches an image aspect ratio.
//
// What:
//
//   - Solve enumerates every divisor pair (rows, cols) of the requested count
//     and scores each by the log-ratio distance |ln((cols/rows)/aspect)|.
//   - The count is honored exactly: Rows*Cols == Count, never approximated.
//     Prime counts therefore yield a degenerate 1×N strip; this is accepted.
//   - Grid carries cell-index helpers (CellIndex, CellAt, IsEdgeCell) and
//     tile-density estimation (TileSize, MinTileDim) used by callers to warn
//     about too-small pieces before committing to a count.
//
// Why:
//
//   - The log-ratio score is scale-symmetric: a 2:1 mismatch scores the same
//     whether the layout is too wide or too tall, so portrait and landscape
//     images are treated evenly.
//   - Thresholding tile density (e.g. rejecting counts whose shorter tile
//     dimension falls under ~28 output pixels) is caller policy, not a grid
//     invariant — the helpers only expose the numbers.
//
// Complexity:
//
//   - Solve: O(N) divisor scan, O(1) memory.
//   - All helpers: O(1).
//
// Errors:
//
//   - ErrBadCount:  requested piece count is zero or negative.
//   - ErrBadAspect: aspect ratio is not a positive finite number.
//   - ErrBadImageSize: image dimensions are zero or negative.
package grid
