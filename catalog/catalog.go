package catalog

import (
	"github.com/pieceworks/jigsaw/grid"
	"github.com/pieceworks/jigsaw/raster"
)

// Piece is one jigsaw piece: immutable identity and assets plus the mutable
// play state the session engine drives.
//
// ID == Row*Cols + Col, which is also the piece's unique correct cell index
// (the solution is the identity permutation; only tray order is shuffled).
type Piece struct {
	ID  int
	Row int
	Col int

	// Mutable during play; owned by the session engine.
	Rotation int // degrees, one of 0, 90, 180, 270
	Placed   bool

	Geo    raster.PieceGeometry
	Assets raster.Assets
}

// Catalog is the immutable-after-generation model of all pieces of one
// puzzle instance. Piece identity, geometry and assets never change;
// Rotation/Placed are mutated through the pieces by the session engine.
type Catalog struct {
	g      grid.Grid
	seed   int64
	style  raster.Style
	layout raster.Layout
	pieces []*Piece
}

// Grid returns the board partition.
func (c *Catalog) Grid() grid.Grid { return c.g }

// Seed returns the effective puzzle seed (never 0). Passing it to Generate
// with the same image reproduces identical geometry.
func (c *Catalog) Seed() int64 { return c.seed }

// Style returns the outline style the assets were rendered with.
func (c *Catalog) Style() raster.Style { return c.style }

// Layout returns the output pixel geometry of the board.
func (c *Catalog) Layout() raster.Layout { return c.layout }

// Len returns the number of pieces.
func (c *Catalog) Len() int { return len(c.pieces) }

// Piece returns the piece with the given id, or nil if the id is out of
// range. The pointer is shared: play-state mutations are visible to all
// holders.
func (c *Catalog) Piece(id int) *Piece {
	if id < 0 || id >= len(c.pieces) {
		return nil
	}

	return c.pieces[id]
}

// Pieces returns the pieces in id order. The slice is a copy; the piece
// pointers are shared.
func (c *Catalog) Pieces() []*Piece {
	out := make([]*Piece, len(c.pieces))
	copy(out, c.pieces)

	return out
}
