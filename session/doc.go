// Package session is the placement state machine played on top of a piece
// catalog: tray ordering, selection, drop validation, rotation, hint zones,
// tray filters and win detection.
//
// What:
//
//   - Each piece is either in the tray (unplaced, shuffled display order) or
//     placed in its one correct cell. The partition invariant holds after
//     every transition: every id appears in exactly one of tray/placements.
//   - A placed piece with rotation 0 is locked: unselectable, unrotatable,
//     unremovable. A correct drop with a wrong rotation still places the
//     piece (partial credit) but reports a distinct result and keeps the
//     selection so the caller can prompt a rotation.
//   - Usage errors from stale UI references (unknown ids, out-of-range
//     cells, no selection) are absorbed as no-ops, never fatal.
//   - Hints map the help level to a Chebyshev radius (simple→0, medium→1,
//     advanced→2) around the selected piece's correct cell, clamped to the
//     grid. Tray filters narrow by correct-cell zone and/or edge pieces;
//     the edge filter auto-disables when it would empty the tray.
//
// Why:
//
//   - All transitions are synchronous, atomic updates behind one mutex, so
//     a transition is never partially visible — the engine can be driven
//     from an event loop or from tests without extra coordination.
//   - The solution is the identity permutation by design: piece id == its
//     correct cell. Only the tray order is random.
//
// Complexity:
//
//   - Select/Rotate/AttemptPlace: O(1); Unplace/filters/Solved: O(n).
//
// Errors:
//
//   - ErrNilCatalog:  the engine needs a generated catalog.
//   - ErrBadZone:     zone rectangle outside the grid or inverted.
//   - ErrBadHelpLevel: unknown help level.
package session
