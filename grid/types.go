// Package grid - core types and sentinel errors for grid solving.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadCount indicates a zero or negative requested piece count.
	ErrBadCount = errors.New("grid: piece count must be positive")
	// ErrBadAspect indicates a non-positive or non-finite aspect ratio.
	ErrBadAspect = errors.New("grid: aspect ratio must be a positive finite number")
	// ErrBadImageSize indicates zero or negative image dimensions.
	ErrBadImageSize = errors.New("grid: image dimensions must be positive")
)

// Grid is a rows×cols partition of the board. It is immutable once built.
//
// Invariant: Rows*Cols == Count, and Count equals the user-requested piece
// count exactly.
type Grid struct {
	Rows  int // number of tile rows, ≥ 1
	Cols  int // number of tile columns, ≥ 1
	Count int // total piece count, == Rows*Cols
}

// CellIndex returns the linear cell index for (row, col): row*Cols + col.
// This index doubles as the id of the piece whose correct cell it is.
func (g Grid) CellIndex(row, col int) int {
	return row*g.Cols + col
}

// CellAt returns the (row, col) coordinates of a linear cell index.
// The index is not range-checked; use InBounds first for untrusted input.
func (g Grid) CellAt(index int) (row, col int) {
	return index / g.Cols, index % g.Cols
}

// InBounds reports whether a linear cell index addresses a real cell.
func (g Grid) InBounds(index int) bool {
	return index >= 0 && index < g.Count
}

// IsEdgeCell reports whether (row, col) lies on the grid's outer boundary.
func (g Grid) IsEdgeCell(row, col int) bool {
	return row == 0 || col == 0 || row == g.Rows-1 || col == g.Cols-1
}
