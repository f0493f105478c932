// Package battle provides the board, fleet and turn logic for Sea Battle.
// This package is UI-agnostic: it never prints, and all randomness comes
// from a caller-supplied *rand.Rand so matches are reproducible from a seed.
package battle

import "fmt"

// GridSize is the side length of every battle grid.
const GridSize = 6

// Coord is a zero-based (row, col) position on a grid.
// Coords are plain values and may be used as map keys.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the zero-based representation used in logs.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Display returns the 1-based "row col" form shown to players.
func (c Coord) Display() string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// neighborOffsets is the 8-neighbourhood around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the eight surrounding coordinates.
// The result is not clipped to the grid.
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		out = append(out, c.Add(d[0], d[1]))
	}
	return out
}

// inBounds reports whether c lies on a GridSize×GridSize board.
func inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}
