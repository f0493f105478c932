package battle

// CellState is the true state of a grid cell, independent of display.
type CellState uint8

const (
	CellEmpty    CellState = iota // open water, never fired upon
	CellOccupied                  // vessel cell, not hit yet
	CellMiss                      // fired upon, no vessel
	CellHit                       // fired upon, vessel cell
	CellSunkRing                  // water next to a sunk vessel, still shootable
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	case CellSunkRing:
		return "sunk-ring"
	default:
		return "unknown"
	}
}

// Outcome is the result of a legal shot.
type Outcome uint8

const (
	Miss Outcome = iota
	Hit
	Sunk
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// Shot describes a resolved shot.
type Shot struct {
	Target  Coord
	Outcome Outcome
	Vessel  *Vessel // vessel that was hit or sunk, nil on Miss
}

// Grid is one side's board: its vessels, cell states and shot history.
type Grid struct {
	cells   [GridSize][GridSize]CellState
	vessels []*Vessel
	blocked map[Coord]struct{} // placement only: vessel cells and their rings
	fired   map[Coord]struct{}
	alive   int
	reveal  bool
}

// NewGrid creates an empty grid. reveal controls whether an external
// viewer is shown the unhit vessel cells.
func NewGrid(reveal bool) *Grid {
	return &Grid{
		blocked: make(map[Coord]struct{}),
		fired:   make(map[Coord]struct{}),
		reveal:  reveal,
	}
}

// OutOfBounds returns true if either component of c is outside [0, GridSize).
func (g *Grid) OutOfBounds(c Coord) bool {
	return !inBounds(c)
}

// PlaceVessel adds v to the grid. Every cell is checked before anything is
// written, so a failed placement leaves the grid untouched.
func (g *Grid) PlaceVessel(v *Vessel) error {
	coords := v.Coords()
	for _, c := range coords {
		if g.OutOfBounds(c) {
			return &PlacementError{Cell: c, Err: ErrOutOfBounds}
		}
		if _, ok := g.blocked[c]; ok {
			return &PlacementError{Cell: c, Err: ErrCellBlocked}
		}
	}

	for _, c := range coords {
		g.cells[c.Row][c.Col] = CellOccupied
		g.blocked[c] = struct{}{}
	}
	for _, c := range v.ring() {
		g.blocked[c] = struct{}{}
	}

	g.vessels = append(g.vessels, v)
	g.alive++
	return nil
}

// ResetPlacementTracking forgets which cells are blocked for placement.
// Committed vessels are not touched.
func (g *Grid) ResetPlacementTracking() {
	g.blocked = make(map[Coord]struct{})
}

// clear removes every vessel and shot, returning the grid to its initial state.
func (g *Grid) clear() {
	g.cells = [GridSize][GridSize]CellState{}
	g.vessels = nil
	g.blocked = make(map[Coord]struct{})
	g.fired = make(map[Coord]struct{})
	g.alive = 0
}

// FireAt resolves a shot at c. Rejected shots (ErrOutOfRange,
// ErrAlreadyFired) never change the grid.
func (g *Grid) FireAt(c Coord) (Shot, error) {
	if g.OutOfBounds(c) {
		return Shot{}, &ShotError{Target: c, Err: ErrOutOfRange}
	}
	if _, ok := g.fired[c]; ok {
		return Shot{}, &ShotError{Target: c, Err: ErrAlreadyFired}
	}

	g.fired[c] = struct{}{}

	for _, v := range g.vessels {
		if !v.Occupies(c) {
			continue
		}
		g.cells[c.Row][c.Col] = CellHit
		if !v.takeHit() {
			return Shot{Target: c, Outcome: Hit, Vessel: v}, nil
		}
		g.alive--
		// Ring cells are only marked for the viewer; they stay out of fired.
		for _, rc := range v.ring() {
			if g.cells[rc.Row][rc.Col] == CellEmpty {
				g.cells[rc.Row][rc.Col] = CellSunkRing
			}
		}
		return Shot{Target: c, Outcome: Sunk, Vessel: v}, nil
	}

	g.cells[c.Row][c.Col] = CellMiss
	return Shot{Target: c, Outcome: Miss}, nil
}

// Cell returns the state at c, or CellEmpty when c is off the grid.
func (g *Grid) Cell(c Coord) CellState {
	if g.OutOfBounds(c) {
		return CellEmpty
	}
	return g.cells[c.Row][c.Col]
}

// Fired reports whether c has already been targeted.
func (g *Grid) Fired(c Coord) bool {
	_, ok := g.fired[c]
	return ok
}

// ShotCount returns the number of legal shots taken at this grid.
func (g *Grid) ShotCount() int {
	return len(g.fired)
}

// Vessels returns the placed vessels in insertion order.
func (g *Grid) Vessels() []*Vessel {
	out := make([]*Vessel, len(g.vessels))
	copy(out, g.vessels)
	return out
}

// AliveCount returns the number of vessels not yet sunk.
func (g *Grid) AliveCount() int {
	return g.alive
}

// RevealShips reports whether unhit vessel cells are shown to a viewer.
func (g *Grid) RevealShips() bool {
	return g.reveal
}

// SetRevealShips changes the display flag; gameplay is unaffected.
func (g *Grid) SetRevealShips(reveal bool) {
	g.reveal = reveal
}
