package edgespec

import (
	"github.com/pieceworks/jigsaw/grid"
)

// Set holds every interior-boundary Spec of one puzzle instance. It is
// write-once: all draws happen in New, lookups never mutate, so a Set may be
// shared freely without locking.
type Set struct {
	g    grid.Grid
	seed int64

	// vert[r*(cols-1)+c] is the boundary between (r,c) and (r,c+1),
	// canonical as seen from the left piece.
	vert []Spec
	// horz[r*cols+c] is the boundary between (r,c) and (r+1,c),
	// canonical as seen from the upper piece.
	horz []Spec
}

// New draws all interior-boundary specs for g from the seeded stream.
// A seed of 0 selects the fixed default seed (see DefaultSeed); identical
// seeds reproduce identical matrices.
//
// Draw order is fixed (all vertical boundaries row-major, then all
// horizontal ones), so the mapping from seed to shapes is stable across
// releases of this package.
func New(g grid.Grid, seed int64) (*Set, error) {
	if g.Rows < 1 || g.Cols < 1 {
		return nil, ErrBadGrid
	}

	eff := seed
	if eff == 0 {
		eff = DefaultSeed
	}
	rng := rngFromSeed(DeriveSeed(eff, edgeStream))

	s := &Set{
		g:    g,
		seed: eff,
		vert: make([]Spec, g.Rows*(g.Cols-1)),
		horz: make([]Spec, (g.Rows-1)*g.Cols),
	}
	for i := range s.vert {
		s.vert[i] = drawSpec(rng)
	}
	for i := range s.horz {
		s.horz[i] = drawSpec(rng)
	}

	return s, nil
}

// Grid returns the grid the set was generated for.
func (s *Set) Grid() grid.Grid { return s.g }

// Seed returns the effective seed (never 0) the set was drawn from.
func (s *Set) Seed() int64 { return s.seed }

// VerticalAt returns the canonical spec of the vertical boundary between
// (row, col) and (row, col+1), as seen from the left piece.
func (s *Set) VerticalAt(row, col int) (Spec, error) {
	if row < 0 || row >= s.g.Rows || col < 0 || col >= s.g.Cols-1 {
		return Spec{}, ErrOutOfBounds
	}

	return s.vert[row*(s.g.Cols-1)+col], nil
}

// HorizontalAt returns the canonical spec of the horizontal boundary between
// (row, col) and (row+1, col), as seen from the upper piece.
func (s *Set) HorizontalAt(row, col int) (Spec, error) {
	if row < 0 || row >= s.g.Rows-1 || col < 0 || col >= s.g.Cols {
		return Spec{}, ErrOutOfBounds
	}

	return s.horz[row*s.g.Cols+col], nil
}

// PieceEdges resolves the four edges of piece (row, col) in trace order
// (Top, Right, Bottom, Left).
//
// Resolution applies the sign-inversion convention: the upper/left piece of
// a boundary reads the canonical record, the lower/right piece reads it with
// negated Sign and negated SkewF. Outer-boundary edges are flat.
func (s *Set) PieceEdges(row, col int) ([4]Spec, error) {
	if row < 0 || row >= s.g.Rows || col < 0 || col >= s.g.Cols {
		return [4]Spec{}, ErrOutOfBounds
	}

	var e [4]Spec
	if row > 0 {
		e[Top] = s.horz[(row-1)*s.g.Cols+col].invert()
	}
	if col < s.g.Cols-1 {
		e[Right] = s.vert[row*(s.g.Cols-1)+col]
	}
	if row < s.g.Rows-1 {
		e[Bottom] = s.horz[row*s.g.Cols+col]
	}
	if col > 0 {
		e[Left] = s.vert[row*(s.g.Cols-1)+col-1].invert()
	}

	return e, nil
}
