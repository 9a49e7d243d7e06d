// Package contour builds the closed outline path of a single jigsaw piece
// from its four resolved edge specs.
//
// What:
//
//   - Build emits one continuous closed cubic-bezier path per piece in
//     tile-local coordinates, already expanded by the pad margin so tabs
//     protruding beyond the tile rectangle stay inside the canvas.
//   - A flat edge is a straight segment. A tabbed edge is two straight runs
//     flanking a symmetric shoulder→neck→tip→neck→shoulder bezier group;
//     the tab protrudes (Sign > 0) or indents (Sign < 0) along the edge's
//     outward normal.
//   - Flatten converts any path into a polyline using Wang's formula for the
//     cubic segment count, for stroking and geometric tests.
//
// Why:
//
//   - The construction is symmetric about the tab center, and both neighbors
//     of a boundary derive their curve from the same canonical spec (with
//     sign and skew negated on the lower/right side), so the two contours
//     trace the identical physical curve in opposite directions — the shapes
//     interlock exactly.
//   - All coordinates are offset by the pad before construction; no
//     transform is applied mid-path, avoiding discontinuities at edge joins.
//
// Complexity:
//
//   - Build: O(1) per piece (at most 4 runs + 16 bezier control points).
//   - Flatten: O(k) points, k proportional to curvature / tolerance.
//
// Errors:
//
//   - ErrBadGeometry: non-positive tile dimensions or negative pad.
package contour
