package battle

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(false)

	tests := []struct {
		coord    Coord
		expected bool
	}{
		{C(0, 0), false},
		{C(5, 5), false},
		{C(2, 3), false},
		{C(-1, 0), true},
		{C(0, -1), true},
		{C(6, 0), true},
		{C(0, 6), true},
		{C(6, 6), true},
	}

	for _, tc := range tests {
		if got := g.OutOfBounds(tc.coord); got != tc.expected {
			t.Errorf("OutOfBounds(%v) = %v, want %v", tc.coord, got, tc.expected)
		}
	}
}

func TestFireAtEmptyGridMisses(t *testing.T) {
	g := NewGrid(false)

	shot, err := g.FireAt(C(0, 0))
	if err != nil {
		t.Fatalf("FireAt() failed: %v", err)
	}
	if shot.Outcome != Miss {
		t.Errorf("Outcome = %v, want miss", shot.Outcome)
	}
	if shot.Vessel != nil {
		t.Error("Miss should not carry a vessel")
	}
	if g.Cell(C(0, 0)) != CellMiss {
		t.Errorf("Cell(0,0) = %v, want miss", g.Cell(C(0, 0)))
	}
	if !g.Fired(C(0, 0)) {
		t.Error("(0,0) should be recorded as fired")
	}
}

func TestSingleCellVesselSinks(t *testing.T) {
	g := NewGrid(false)
	if err := g.PlaceVessel(NewVessel(C(0, 0), 1, Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	shot, err := g.FireAt(C(0, 0))
	if err != nil {
		t.Fatalf("FireAt() failed: %v", err)
	}
	if shot.Outcome != Sunk {
		t.Fatalf("Outcome = %v, want sunk", shot.Outcome)
	}
	if g.AliveCount() != 0 {
		t.Errorf("AliveCount() = %d, want 0", g.AliveCount())
	}
	if g.Cell(C(0, 0)) != CellHit {
		t.Errorf("Cell(0,0) = %v, want hit", g.Cell(C(0, 0)))
	}

	for _, c := range []Coord{C(0, 1), C(1, 0), C(1, 1)} {
		if g.Cell(c) != CellSunkRing {
			t.Errorf("Cell(%v) = %v, want sunk-ring", c, g.Cell(c))
		}
		if g.Fired(c) {
			t.Errorf("ring cell %v must not be marked as fired", c)
		}
	}
	if g.Cell(C(2, 2)) != CellEmpty {
		t.Errorf("Cell(2,2) = %v, want empty", g.Cell(C(2, 2)))
	}
}

func TestRingCellStaysShootable(t *testing.T) {
	g := NewGrid(false)
	if err := g.PlaceVessel(NewVessel(C(2, 2), 1, Vertical)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	if _, err := g.FireAt(C(2, 2)); err != nil {
		t.Fatalf("FireAt() failed: %v", err)
	}

	shot, err := g.FireAt(C(1, 1))
	if err != nil {
		t.Fatalf("firing at a ring cell should be legal, got %v", err)
	}
	if shot.Outcome != Miss {
		t.Errorf("Outcome = %v, want miss", shot.Outcome)
	}
	if g.Cell(C(1, 1)) != CellMiss {
		t.Errorf("Cell(1,1) = %v, want miss", g.Cell(C(1, 1)))
	}
}

func TestHitThenSunk(t *testing.T) {
	g := NewGrid(false)
	if err := g.PlaceVessel(NewVessel(C(3, 1), 2, Vertical)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	shot, err := g.FireAt(C(4, 1))
	if err != nil {
		t.Fatalf("FireAt() failed: %v", err)
	}
	if shot.Outcome != Hit {
		t.Errorf("first Outcome = %v, want hit", shot.Outcome)
	}
	if shot.Vessel.RemainingHits() != 1 {
		t.Errorf("RemainingHits() = %d, want 1", shot.Vessel.RemainingHits())
	}
	if g.AliveCount() != 1 {
		t.Errorf("AliveCount() = %d, want 1", g.AliveCount())
	}

	shot, err = g.FireAt(C(3, 1))
	if err != nil {
		t.Fatalf("FireAt() failed: %v", err)
	}
	if shot.Outcome != Sunk {
		t.Errorf("second Outcome = %v, want sunk", shot.Outcome)
	}
	if !shot.Vessel.IsSunk() {
		t.Error("vessel should report sunk")
	}
}

func TestFireAtTwiceIsRejected(t *testing.T) {
	g := NewGrid(false)
	if err := g.PlaceVessel(NewVessel(C(1, 1), 3, Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	for _, c := range []Coord{C(1, 2), C(5, 5)} {
		if _, err := g.FireAt(c); err != nil {
			t.Fatalf("FireAt(%v) failed: %v", c, err)
		}
		before := g.Snapshot()
		shots := g.ShotCount()

		_, err := g.FireAt(c)
		if !errors.Is(err, ErrAlreadyFired) {
			t.Fatalf("second FireAt(%v) error = %v, want ErrAlreadyFired", c, err)
		}
		if g.Snapshot() != before {
			t.Errorf("grid changed after rejected shot at %v", c)
		}
		if g.ShotCount() != shots {
			t.Errorf("ShotCount() = %d, want %d", g.ShotCount(), shots)
		}
	}
}

func TestFireOutOfRange(t *testing.T) {
	g := NewGrid(false)

	for _, c := range []Coord{C(-1, 0), C(0, 6), C(6, 6), C(10, -3)} {
		_, err := g.FireAt(c)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FireAt(%v) error = %v, want ErrOutOfRange", c, err)
		}
		var se *ShotError
		if !errors.As(err, &se) || se.Target != c {
			t.Errorf("FireAt(%v) should return *ShotError for that target", c)
		}
		if !IsRetryable(err) {
			t.Errorf("out of range error should be retryable")
		}
	}
	if g.ShotCount() != 0 {
		t.Errorf("ShotCount() = %d, want 0", g.ShotCount())
	}
}

func TestPlaceVesselOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		vessel *Vessel
	}{
		{"horizontal overflow", NewVessel(C(0, 4), 3, Horizontal)},
		{"vertical overflow", NewVessel(C(5, 0), 2, Vertical)},
		{"negative bow", NewVessel(C(-1, 2), 1, Horizontal)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(false)
			err := g.PlaceVessel(tc.vessel)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("PlaceVessel() error = %v, want ErrOutOfBounds", err)
			}
			if len(g.Vessels()) != 0 || g.AliveCount() != 0 {
				t.Error("failed placement must not add a vessel")
			}
			if g.Snapshot() != NewGrid(false).Snapshot() {
				t.Error("failed placement must not touch any cell")
			}
		})
	}
}

func TestErrorsShowPlayerCoordinates(t *testing.T) {
	g := NewGrid(false)

	err := g.PlaceVessel(NewVessel(C(0, 4), 3, Horizontal))
	if got := err.Error(); got != ErrOutOfBounds.Error()+" at 1 7" {
		t.Errorf("PlaceVessel() error = %q, want the cell as \"1 7\"", got)
	}

	_, err = g.FireAt(C(6, 0))
	if got := err.Error(); got != ErrOutOfRange.Error()+" at 7 1" {
		t.Errorf("FireAt() error = %q, want the cell as \"7 1\"", got)
	}
}

func TestPlaceVesselBlocked(t *testing.T) {
	g := NewGrid(false)
	if err := g.PlaceVessel(NewVessel(C(0, 0), 2, Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	tests := []struct {
		name    string
		vessel  *Vessel
		blocked bool
	}{
		{"overlap", NewVessel(C(0, 1), 1, Horizontal), true},
		{"side contact", NewVessel(C(0, 2), 2, Horizontal), true},
		{"diagonal contact", NewVessel(C(1, 2), 1, Horizontal), true},
		{"below contact", NewVessel(C(1, 0), 3, Vertical), true},
		{"one cell gap", NewVessel(C(2, 0), 1, Horizontal), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := len(g.Vessels())
			err := g.PlaceVessel(tc.vessel)
			if tc.blocked {
				if !errors.Is(err, ErrCellBlocked) {
					t.Fatalf("PlaceVessel() error = %v, want ErrCellBlocked", err)
				}
				if len(g.Vessels()) != before {
					t.Error("blocked placement must not add a vessel")
				}
				return
			}
			if err != nil {
				t.Fatalf("PlaceVessel() failed: %v", err)
			}
		})
	}
}

func TestResetPlacementTracking(t *testing.T) {
	g := NewGrid(false)
	if err := g.PlaceVessel(NewVessel(C(0, 0), 1, Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	if err := g.PlaceVessel(NewVessel(C(1, 1), 1, Horizontal)); !errors.Is(err, ErrCellBlocked) {
		t.Fatalf("expected ErrCellBlocked before reset, got %v", err)
	}

	g.ResetPlacementTracking()

	if err := g.PlaceVessel(NewVessel(C(1, 1), 1, Horizontal)); err != nil {
		t.Fatalf("placement after reset failed: %v", err)
	}
	if len(g.Vessels()) != 2 {
		t.Errorf("Vessels() = %d, want 2", len(g.Vessels()))
	}
	if g.Cell(C(0, 0)) != CellOccupied {
		t.Error("reset must not remove committed vessels")
	}
}

func TestAliveCountInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewGrid(false)
	if _, err := PlaceFleet(g, Fleet(), rng, DefaultPlacementParams()); err != nil {
		t.Fatalf("PlaceFleet() failed: %v", err)
	}

	coords := make([]Coord, 0, GridSize*GridSize)
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			coords = append(coords, C(r, c))
		}
	}
	rng.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })

	sunk := 0
	for _, c := range coords {
		shot, err := g.FireAt(c)
		if err != nil {
			t.Fatalf("FireAt(%v) failed: %v", c, err)
		}
		if shot.Outcome == Sunk {
			sunk++
		}

		alive := 0
		for _, v := range g.Vessels() {
			if v.RemainingHits() > 0 {
				alive++
			}
		}
		if g.AliveCount() != alive {
			t.Fatalf("after %v: AliveCount() = %d, counted %d", c, g.AliveCount(), alive)
		}
	}

	if g.AliveCount() != 0 {
		t.Errorf("AliveCount() = %d after sweeping the grid, want 0", g.AliveCount())
	}
	if sunk != len(Fleet()) {
		t.Errorf("sunk %d vessels, want %d", sunk, len(Fleet()))
	}
}

func TestSinkingEveryVesselStopsAtZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGrid(false)
	if _, err := PlaceFleet(g, Fleet(), rng, DefaultPlacementParams()); err != nil {
		t.Fatalf("PlaceFleet() failed: %v", err)
	}

	for _, v := range g.Vessels() {
		for _, c := range v.Coords() {
			if _, err := g.FireAt(c); err != nil {
				t.Fatalf("FireAt(%v) failed: %v", c, err)
			}
		}
	}
	if g.AliveCount() != 0 {
		t.Fatalf("AliveCount() = %d, want 0", g.AliveCount())
	}

	// Further shots, legal or not, cannot push it below zero.
	for _, v := range g.Vessels() {
		_, _ = g.FireAt(v.Bow())
	}
	if g.AliveCount() != 0 {
		t.Errorf("AliveCount() = %d, want 0", g.AliveCount())
	}
}

func TestSnapshotVisibility(t *testing.T) {
	g := NewGrid(false)
	if err := g.PlaceVessel(NewVessel(C(0, 0), 2, Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	hidden := g.Snapshot()
	if hidden.Visible(C(0, 0)) != CellEmpty {
		t.Errorf("hidden grid shows %v at (0,0), want empty", hidden.Visible(C(0, 0)))
	}

	g.SetRevealShips(true)
	shown := g.Snapshot()
	if shown.Visible(C(0, 0)) != CellOccupied {
		t.Errorf("revealed grid shows %v at (0,0), want occupied", shown.Visible(C(0, 0)))
	}
	if shown.Total != 1 || shown.Alive != 1 {
		t.Errorf("snapshot counts = %d/%d, want 1/1", shown.Alive, shown.Total)
	}
}
