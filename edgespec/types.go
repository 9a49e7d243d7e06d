// Package edgespec - core types, parameter ranges and sentinel errors.
package edgespec

import "errors"

// Sentinel errors for edge-spec operations.
var (
	// ErrBadGrid indicates non-positive grid dimensions.
	ErrBadGrid = errors.New("edgespec: grid dimensions must be positive")
	// ErrOutOfBounds indicates a boundary or piece coordinate outside the grid.
	ErrOutOfBounds = errors.New("edgespec: coordinate out of range")
)

// Parameter ranges for interior edge draws. Physical-boundary edges are
// always flat (Sign 0) and never drawn.
const (
	// MinWidthF and MaxWidthF bound the tab head width factor.
	MinWidthF = 0.92
	MaxWidthF = 1.06

	// MinNeckF and MaxNeckF bound the tab neck width factor.
	MinNeckF = 0.90
	MaxNeckF = 1.12

	// MinSkewF and MaxSkewF bound the tab center offset along the edge.
	MinSkewF = -1.0
	MaxSkewF = 1.0
)

// Edge indexes the four sides of a piece in trace order.
type Edge int

const (
	// Top is the piece's upper edge, traced left→right.
	Top Edge = iota
	// Right is the piece's right edge, traced top→bottom.
	Right
	// Bottom is the piece's lower edge, traced right→left.
	Bottom
	// Left is the piece's left edge, traced bottom→top.
	Left
)

// Spec holds the interlock parameters of one boundary as seen from one side.
//
// Sign is -1, 0 or +1: 0 means flat (physical boundary), +1 means the tab
// protrudes away from the piece reading the spec, -1 means it indents into
// it. WidthF scales the tab head width, NeckF the narrow neck, SkewF shifts
// the tab center along the edge.
type Spec struct {
	Sign   int8
	WidthF float64
	NeckF  float64
	SkewF  float64
}

// Flat reports whether the edge is a straight segment (outer boundary).
func (s Spec) Flat() bool { return s.Sign == 0 }

// invert returns the spec as seen from the lower/right neighbor: negated
// Sign, negated SkewF, identical width factors.
func (s Spec) invert() Spec {
	return Spec{Sign: -s.Sign, WidthF: s.WidthF, NeckF: s.NeckF, SkewF: -s.SkewF}
}
