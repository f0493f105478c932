package battle

// Orientation is the direction a vessel extends from its bow.
type Orientation uint8

const (
	Horizontal Orientation = iota // extends along the row (increasing Col)
	Vertical                      // extends down the column (increasing Row)
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Vessel is a straight line of cells anchored at its bow.
// Occupied coordinates are always derived from bow, length and orientation.
type Vessel struct {
	bow         Coord
	length      int
	orientation Orientation
	remaining   int
}

// NewVessel creates an undamaged vessel.
func NewVessel(bow Coord, length int, o Orientation) *Vessel {
	return &Vessel{
		bow:         bow,
		length:      length,
		orientation: o,
		remaining:   length,
	}
}

// Bow returns the anchor coordinate.
func (v *Vessel) Bow() Coord {
	return v.bow
}

// Len returns the number of cells the vessel occupies.
func (v *Vessel) Len() int {
	return v.length
}

// Orientation returns the vessel direction.
func (v *Vessel) Orientation() Orientation {
	return v.orientation
}

// RemainingHits returns how many more hits sink the vessel.
func (v *Vessel) RemainingHits() int {
	return v.remaining
}

// IsSunk returns true once every cell has been hit.
func (v *Vessel) IsSunk() bool {
	return v.remaining == 0
}

// Coords returns the occupied coordinates, bow first.
func (v *Vessel) Coords() []Coord {
	coords := make([]Coord, 0, v.length)
	for i := 0; i < v.length; i++ {
		if v.orientation == Vertical {
			coords = append(coords, v.bow.Add(i, 0))
		} else {
			coords = append(coords, v.bow.Add(0, i))
		}
	}
	return coords
}

// Occupies reports whether c is one of the vessel's cells.
func (v *Vessel) Occupies(c Coord) bool {
	for _, vc := range v.Coords() {
		if vc == c {
			return true
		}
	}
	return false
}

// ring returns the in-bounds cells touching the vessel, excluding its own.
func (v *Vessel) ring() []Coord {
	seen := make(map[Coord]bool)
	var out []Coord
	for _, c := range v.Coords() {
		for _, n := range c.Neighbors() {
			if !inBounds(n) || seen[n] || v.Occupies(n) {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// takeHit records a hit and returns true if the vessel just sank.
func (v *Vessel) takeHit() bool {
	if v.remaining == 0 {
		return false
	}
	v.remaining--
	return v.remaining == 0
}
