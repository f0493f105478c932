package battle

// Snapshot is a value copy of a grid for rendering.
// It is safe to hand to another goroutine while the match continues.
type Snapshot struct {
	Cells  [GridSize][GridSize]CellState
	Alive  int
	Total  int
	Reveal bool
}

// Snapshot captures the grid's current display state.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		Cells:  g.cells,
		Alive:  g.alive,
		Total:  len(g.vessels),
		Reveal: g.reveal,
	}
}

// At returns the cell state at c, or CellEmpty when c is off the grid.
func (s Snapshot) At(c Coord) CellState {
	if !inBounds(c) {
		return CellEmpty
	}
	return s.Cells[c.Row][c.Col]
}

// Visible returns the state a viewer may see at c: unhit vessel cells are
// reported as empty water unless Reveal is set.
func (s Snapshot) Visible(c Coord) CellState {
	st := s.At(c)
	if st == CellOccupied && !s.Reveal {
		return CellEmpty
	}
	return st
}
