package session

import (
	"math/rand"
	"sync"

	"github.com/pieceworks/jigsaw/catalog"
	"github.com/pieceworks/jigsaw/grid"
)

// emptyCell marks an unoccupied board cell in the placements array.
const emptyCell = -1

// Engine owns all mutable play state of one puzzle instance. Every exported
// method acquires the engine mutex, so each transition is atomic and never
// partially visible.
type Engine struct {
	mu sync.Mutex

	cat  *catalog.Catalog
	g    grid.Grid
	seed int64

	trayRng *rand.Rand
	spinRng *rand.Rand

	tray       []int // unplaced piece ids in display order
	placements []int // placements[cell] = piece id or emptyCell
	selected   int   // selected piece id or -1

	rotationOn bool
	helpOn     bool
	helpLevel  HelpLevel

	zone     *Zone
	edgeOnly bool
}

// New builds a session over a generated catalog. All pieces start in the
// tray in Fisher–Yates-shuffled order; with rotation enabled each piece is
// dealt a random initial rotation. A seed of 0 derives the session seed from
// the catalog seed, keeping the default fully deterministic.
func New(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, ErrNilCatalog
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	seed := o.Seed
	if seed == 0 {
		seed = cat.Seed()
	}

	e := &Engine{
		cat:        cat,
		g:          cat.Grid(),
		seed:       seed,
		trayRng:    rngFor(seed, trayStream),
		spinRng:    rngFor(seed, spinStream),
		rotationOn: o.RotationEnabled,
		helpOn:     o.HelpEnabled,
		helpLevel:  o.HelpLevel,
	}
	e.deal()

	return e, nil
}

// deal resets all play state: everything back to a freshly shuffled tray.
// Consuming the RNG streams in place makes repeated deals (Restart) distinct
// yet still reproducible from the session seed.
func (e *Engine) deal() {
	n := e.cat.Len()

	e.placements = make([]int, n)
	for i := range e.placements {
		e.placements[i] = emptyCell
	}

	e.tray = make([]int, n)
	for i := range e.tray {
		e.tray[i] = i
	}
	shuffleIntsInPlace(e.tray, e.trayRng)

	e.selected = -1
	for _, p := range e.cat.Pieces() {
		p.Placed = false
		if e.rotationOn {
			p.Rotation = 90 * e.spinRng.Intn(4)
		} else {
			p.Rotation = 0
		}
	}
}

// locked reports whether a piece is fully solved: placed at its correct
// cell with rotation 0. Locked pieces are unselectable and unremovable.
func (e *Engine) locked(p *catalog.Piece) bool {
	return p.Placed && p.Rotation == 0
}

// Select marks a piece as the placement candidate. Selecting the already
// selected piece is a no-op. Locked pieces and unknown ids are refused.
// It returns whether the piece is selected afterwards.
func (e *Engine) Select(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.cat.Piece(id)
	if p == nil || e.locked(p) {
		return false
	}
	e.selected = id

	return true
}

// Deselect clears the selection.
func (e *Engine) Deselect() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = -1
}

// Selected returns the selected piece id, if any.
func (e *Engine) Selected() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.selected, e.selected != -1
}

// Rotate advances a piece's rotation by +90° (mod 360). It is a no-op when
// rotation play is disabled, for unknown ids and for locked pieces. A placed
// piece rotated back to 0 becomes locked; if it was selected, the selection
// is cleared as its placement is now complete.
func (e *Engine) Rotate(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.rotationOn {
		return false
	}
	p := e.cat.Piece(id)
	if p == nil || e.locked(p) {
		return false
	}

	p.Rotation = (p.Rotation + 90) % 360
	if e.locked(p) && e.selected == id {
		e.selected = -1
	}

	return true
}

// AttemptPlace drops the selected piece onto a target cell.
//
// The drop is correct iff the target is the piece's own id (each piece has
// exactly one correct cell) and the cell is empty or already holds that
// piece. A correct drop with a pending rotation still places the piece but
// reports PlaceWrongOrientation and keeps the selection; full success
// requires rotation 0 and clears it. Everything else leaves all state
// untouched.
func (e *Engine) AttemptPlace(cell int) PlaceResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.selected == -1 || !e.g.InBounds(cell) {
		return PlaceIgnored
	}
	p := e.cat.Piece(e.selected)
	if p == nil {
		e.selected = -1

		return PlaceIgnored
	}

	if p.ID != cell || (e.placements[cell] != emptyCell && e.placements[cell] != p.ID) {
		return PlaceRejected
	}

	if !p.Placed {
		e.removeFromTray(p.ID)
		e.placements[cell] = p.ID
		p.Placed = true
		e.normalizeFilters()
	}

	if e.rotationOn && p.Rotation != 0 {
		return PlaceWrongOrientation
	}
	e.selected = -1

	return PlaceSuccess
}

// Unplace removes a placed, non-locked piece from the board and re-inserts
// it at the front of the tray, so the most recently removed piece surfaces
// first. Tray pieces, locked pieces and unknown ids are no-ops.
func (e *Engine) Unplace(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.cat.Piece(id)
	if p == nil || !p.Placed || e.locked(p) {
		return false
	}

	e.placements[p.ID] = emptyCell
	p.Placed = false
	e.tray = append([]int{id}, e.tray...)
	e.normalizeFilters()

	return true
}

// SolveAll reveals the solution: every piece placed at its own cell with
// rotation 0, tray emptied, selection cleared.
func (e *Engine) SolveAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.cat.Pieces() {
		p.Rotation = 0
		p.Placed = true
		e.placements[p.ID] = p.ID
	}
	e.tray = e.tray[:0]
	e.selected = -1
	e.normalizeFilters()
}

// ReshuffleTray redraws the display order of the remaining tray pieces.
func (e *Engine) ReshuffleTray() {
	e.mu.Lock()
	defer e.mu.Unlock()
	shuffleIntsInPlace(e.tray, e.trayRng)
}

// Restart deals the same catalog again: everything back to the tray with a
// fresh shuffle (and fresh rotations when rotation play is on). The deal
// sequence is reproducible from the session seed.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deal()
}

// SetRotationEnabled toggles rotation play. Toggling it off forces every
// piece back to rotation 0 — restoring the invariant that disabled rotation
// means no piece is ever rotated — which may lock correctly placed pieces
// and complete a pending selection.
func (e *Engine) SetRotationEnabled(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rotationOn = on
	if on {
		return
	}
	for _, p := range e.cat.Pieces() {
		p.Rotation = 0
	}
	if e.selected != -1 && e.locked(e.cat.Piece(e.selected)) {
		e.selected = -1
	}
}

// RotationEnabled reports whether rotation play is on.
func (e *Engine) RotationEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.rotationOn
}

// SetHelpEnabled toggles hint zones.
func (e *Engine) SetHelpEnabled(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.helpOn = on
}

// SetHelpLevel changes the hint-zone size.
func (e *Engine) SetHelpLevel(level HelpLevel) error {
	if !level.valid() {
		return ErrBadHelpLevel
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.helpLevel = level

	return nil
}

// HintRect returns the hint zone for the selected piece: the square of
// cells within the help level's Chebyshev radius around the piece's correct
// cell, clamped to the grid. It reports false while help is disabled or
// nothing is selected.
func (e *Engine) HintRect() (Zone, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.helpOn || e.selected == -1 {
		return Zone{}, false
	}

	row, col := e.g.CellAt(e.selected)
	r := e.helpLevel.Radius()

	return Zone{
		MinRow: max(0, row-r),
		MinCol: max(0, col-r),
		MaxRow: min(e.g.Rows-1, row+r),
		MaxCol: min(e.g.Cols-1, col+r),
	}, true
}

// SetZone restricts the tray to pieces whose correct cell lies within z.
func (e *Engine) SetZone(z Zone) error {
	if z.MinRow < 0 || z.MinCol < 0 ||
		z.MaxRow >= e.g.Rows || z.MaxCol >= e.g.Cols ||
		z.MinRow > z.MaxRow || z.MinCol > z.MaxCol {
		return ErrBadZone
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.zone = &z
	e.normalizeFilters()

	return nil
}

// ClearZone removes the zone filter.
func (e *Engine) ClearZone() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zone = nil
	e.normalizeFilters()
}

// SetEdgeFilter restricts the tray to outer-boundary pieces. It returns the
// effective state: enabling is refused (auto-disabled) when no edge piece is
// available under the current zone filter, to avoid an impossible tray.
func (e *Engine) SetEdgeFilter(on bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.edgeOnly = on
	e.normalizeFilters()

	return e.edgeOnly
}

// EdgeFilter reports whether the edge-pieces filter is active.
func (e *Engine) EdgeFilter() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.edgeOnly
}

// normalizeFilters drops the edge filter as soon as it would empty the
// tray under the current zone filter. Callers must hold the mutex.
func (e *Engine) normalizeFilters() {
	if !e.edgeOnly {
		return
	}
	for _, id := range e.tray {
		row, col := e.g.CellAt(id)
		if e.passesZone(row, col) && e.g.IsEdgeCell(row, col) {
			return
		}
	}
	e.edgeOnly = false
}

func (e *Engine) passesZone(row, col int) bool {
	return e.zone == nil || e.zone.Contains(row, col)
}

// Tray returns the filtered tray in display order. Correctly placed pieces
// are never in the tray; the zone and edge filters narrow it further.
func (e *Engine) Tray() []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.filteredTray()
}

// filteredTray applies the zone and edge filters to the tray in display
// order. Callers must hold the mutex.
func (e *Engine) filteredTray() []int {
	out := make([]int, 0, len(e.tray))
	for _, id := range e.tray {
		row, col := e.g.CellAt(id)
		if !e.passesZone(row, col) {
			continue
		}
		if e.edgeOnly && !e.g.IsEdgeCell(row, col) {
			continue
		}
		out = append(out, id)
	}

	return out
}

// TrayOrder returns the full unfiltered tray in display order.
func (e *Engine) TrayOrder() []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]int, len(e.tray))
	copy(out, e.tray)

	return out
}

// Placements returns a copy of the board: piece id per cell, -1 for empty.
func (e *Engine) Placements() []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]int, len(e.placements))
	copy(out, e.placements)

	return out
}

// PlacedCount returns the number of occupied cells.
func (e *Engine) PlacedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.placedCount()
}

func (e *Engine) placedCount() int {
	n := 0
	for _, id := range e.placements {
		if id != emptyCell {
			n++
		}
	}

	return n
}

// Solved reports whether the puzzle is complete: every piece placed with
// rotation 0. The result is derived by scanning piece state, not tracked
// separately.
func (e *Engine) Solved() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.solved()
}

func (e *Engine) solved() bool {
	for _, p := range e.cat.Pieces() {
		if !p.Placed || p.Rotation != 0 {
			return false
		}
	}

	return true
}

// Snapshot is a read-only copy of the observable session state, safe to
// hand to renderers without exposing internal slices.
type Snapshot struct {
	Tray            []int // unfiltered display order
	FilteredTray    []int
	Placements      []int // piece id per cell, -1 for empty
	Selected        int   // -1 when nothing is selected
	RotationEnabled bool
	HelpEnabled     bool
	HelpLevel       HelpLevel
	EdgeFilter      bool
	Zone            *Zone
	PlacedCount     int
	Solved          bool
}

// Snapshot captures the current state under a single lock acquisition.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	tray := make([]int, len(e.tray))
	copy(tray, e.tray)
	placements := make([]int, len(e.placements))
	copy(placements, e.placements)
	var zone *Zone
	if e.zone != nil {
		z := *e.zone
		zone = &z
	}

	return Snapshot{
		Tray:            tray,
		FilteredTray:    e.filteredTray(),
		Placements:      placements,
		Selected:        e.selected,
		RotationEnabled: e.rotationOn,
		HelpEnabled:     e.helpOn,
		HelpLevel:       e.helpLevel,
		EdgeFilter:      e.edgeOnly,
		Zone:            zone,
		PlacedCount:     e.placedCount(),
		Solved:          e.solved(),
	}
}

// removeFromTray deletes one id from the tray, preserving order.
func (e *Engine) removeFromTray(id int) {
	for i, v := range e.tray {
		if v == id {
			e.tray = append(e.tray[:i], e.tray[i+1:]...)

			return
		}
	}
}
