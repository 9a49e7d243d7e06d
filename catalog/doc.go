// Package catalog owns the piece model and the generation pipeline that
// turns an image and a piece count into a complete, immutable set of piece
// assets.
//
// What:
//
//   - Piece couples immutable identity (ID, Row, Col — ID is also the
//     piece's one correct cell) and assets with the mutable play state
//     (Rotation, Placed) that the session package drives.
//   - Generate runs the full pipeline: grid.Solve → edgespec.New →
//     contour.Build → raster.RenderPiece per piece, with an incremental
//     cadence: the yield callback fires every 24 pieces so a cooperative
//     event loop stays responsive, the progress callback every 12 pieces
//     and on completion to avoid excessive re-renders.
//   - Commit is all-or-nothing: a cancelled context or a failed tile aborts
//     the whole batch and no partial catalog is ever returned.
//   - Restyle re-renders assets with new cosmetic parameters only; the seed
//     reproduces identical edge geometry, and play state is preserved.
//
// Why:
//
//   - Generation for large counts (up to 1000 pieces) is CPU-bound; the
//     explicit yield/progress cadence lets single-threaded hosts interleave
//     it with interaction without threads, and lets concurrent hosts drive
//     it from a worker just as well.
//   - Gating visibility on full completion means no stale or partial piece
//     can ever reach a tray or board.
//
// Errors:
//
//   - ErrNilImage:          source image is nil.
//   - ErrGenerationFailed:  a tile failed to rasterize; wraps the cause.
//   - ErrGenerationAborted: the context was cancelled mid-batch.
//   - ErrImageMismatch:     Restyle got an image of different dimensions.
//   - Input errors from grid.Solve and raster.NewLayout propagate unchanged.
package catalog
