// Package edgespec generates and resolves the tab/blank parameters that make
// neighboring jigsaw pieces interlock.
//
// What:
//
//   - One Spec per interior grid boundary: Sign (which side bears the tab),
//     WidthF (tab head width factor), NeckF (neck width factor) and SkewF
//     (tab center offset along the edge).
//   - A Set draws every Spec once from a seeded stream and is read-only
//     thereafter. Both pieces adjoining a boundary read the same record —
//     the arena-of-specs-by-index pattern, no piece-to-piece references.
//   - PieceEdges resolves the four edges of a piece. The piece on the
//     upper/left side of a boundary sees the canonical Spec; the lower/right
//     piece sees the same WidthF/NeckF with negated Sign (protrusion becomes
//     indentation) and negated SkewF (the edge is traversed in the opposite
//     direction when tracing that piece's own closed path).
//
// Why:
//
//   - Sharing a single canonical record per boundary is what guarantees
//     bit-for-bit complementary contours between neighbors.
//   - Explicit seeding reproduces identical geometry for "restart same
//     puzzle" and cosmetic-only regeneration; a new puzzle draws a new seed.
//
// Complexity:
//
//   - New: O(rows*cols) draws, O(rows*cols) memory.
//   - PieceEdges / accessors: O(1).
//
// Errors:
//
//   - ErrBadGrid:      grid dimensions are not positive.
//   - ErrOutOfBounds:  a boundary or piece coordinate is outside the grid.
package edgespec
