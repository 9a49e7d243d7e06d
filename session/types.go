// Package session - result/level enums, zone type, options, sentinel errors.
package session

import "errors"

// Sentinel errors for session configuration.
var (
	// ErrNilCatalog indicates a nil catalog was passed to New.
	ErrNilCatalog = errors.New("session: catalog is nil")
	// ErrBadZone indicates a zone rectangle outside the grid or inverted.
	ErrBadZone = errors.New("session: zone rectangle out of range")
	// ErrBadHelpLevel indicates an unknown help level.
	ErrBadHelpLevel = errors.New("session: unknown help level")
)

// PlaceResult classifies the outcome of an AttemptPlace transition.
type PlaceResult int

const (
	// PlaceIgnored means the attempt referenced stale state (no selection,
	// unknown piece, out-of-range cell) and was absorbed as a no-op.
	PlaceIgnored PlaceResult = iota
	// PlaceRejected means the target is not the piece's correct cell (or the
	// cell is occupied by another piece); nothing was mutated.
	PlaceRejected
	// PlaceWrongOrientation means the piece was placed at its correct cell
	// but still needs rotating; the selection is retained to prompt it.
	PlaceWrongOrientation
	// PlaceSuccess means the piece was placed correctly with rotation 0;
	// the piece is now locked and the selection cleared.
	PlaceSuccess
)

// HelpLevel selects the hint-zone size.
type HelpLevel int

const (
	// HelpSimple highlights exactly the correct cell.
	HelpSimple HelpLevel = iota
	// HelpMedium highlights a 3×3 neighborhood.
	HelpMedium
	// HelpAdvanced highlights a 5×5 neighborhood.
	HelpAdvanced
)

// Radius returns the Chebyshev radius of the hint zone in grid cells.
func (l HelpLevel) Radius() int {
	switch l {
	case HelpMedium:
		return 1
	case HelpAdvanced:
		return 2
	default:
		return 0
	}
}

func (l HelpLevel) valid() bool {
	return l == HelpSimple || l == HelpMedium || l == HelpAdvanced
}

// Zone is an inclusive rectangular sub-range of grid cells. It doubles as
// the tray zone filter and as the hint rectangle.
type Zone struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Contains reports whether (row, col) lies within the zone.
func (z Zone) Contains(row, col int) bool {
	return row >= z.MinRow && row <= z.MaxRow && col >= z.MinCol && col <= z.MaxCol
}

// Options configures a new session.
//
// Seed            – shuffle/rotation seed; 0 derives one from the catalog
//
//	seed so the default is still deterministic.
//
// RotationEnabled – deal pieces with random initial rotations and require
//
//	rotation 0 for full placement credit.
//
// HelpEnabled     – start with hint zones on, at HelpLevel.
type Options struct {
	Seed            int64
	RotationEnabled bool
	HelpEnabled     bool
	HelpLevel       HelpLevel
}

// Option is a functional option for configuring a session.
type Option func(*Options)

// DefaultOptions returns session defaults: derived seed, rotation off,
// help off at HelpSimple.
func DefaultOptions() Options {
	return Options{HelpLevel: HelpSimple}
}

// WithSeed sets the shuffle/rotation seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRotationEnabled starts the session with rotation play enabled.
func WithRotationEnabled() Option {
	return func(o *Options) { o.RotationEnabled = true }
}

// WithHelp starts the session with hint zones enabled at the given level.
// An invalid level panics, signalling a configuration bug early.
func WithHelp(level HelpLevel) Option {
	return func(o *Options) {
		if !level.valid() {
			panic(ErrBadHelpLevel.Error())
		}
		o.HelpEnabled = true
		o.HelpLevel = level
	}
}
