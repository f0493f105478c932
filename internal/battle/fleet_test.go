package battle

import (
	"errors"
	"math/rand"
	"testing"
)

func chebyshev(a, b Coord) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

func TestPlaceFleetSeparation(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGrid(false)

		if _, err := PlaceFleet(g, Fleet(), rng, DefaultPlacementParams()); err != nil {
			t.Fatalf("seed %d: PlaceFleet() failed: %v", seed, err)
		}

		vessels := g.Vessels()
		if len(vessels) != len(Fleet()) {
			t.Fatalf("seed %d: placed %d vessels, want %d", seed, len(vessels), len(Fleet()))
		}
		if g.AliveCount() != len(vessels) {
			t.Errorf("seed %d: AliveCount() = %d, want %d", seed, g.AliveCount(), len(vessels))
		}

		occupied := 0
		for r := 0; r < GridSize; r++ {
			for c := 0; c < GridSize; c++ {
				if g.Cell(C(r, c)) == CellOccupied {
					occupied++
				}
			}
		}
		if occupied != 10 {
			t.Errorf("seed %d: %d occupied cells, want 10", seed, occupied)
		}

		for i := range vessels {
			for _, c := range vessels[i].Coords() {
				if g.OutOfBounds(c) {
					t.Errorf("seed %d: vessel cell %v out of bounds", seed, c)
				}
			}
			for j := i + 1; j < len(vessels); j++ {
				for _, a := range vessels[i].Coords() {
					for _, b := range vessels[j].Coords() {
						if chebyshev(a, b) <= 1 {
							t.Fatalf("seed %d: vessels %d and %d touch at %v/%v", seed, i, j, a, b)
						}
					}
				}
			}
		}
	}
}

func TestPlaceFleetLengthsMatchManifest(t *testing.T) {
	g := NewGrid(false)
	if _, err := PlaceFleet(g, Fleet(), rand.New(rand.NewSource(3)), DefaultPlacementParams()); err != nil {
		t.Fatalf("PlaceFleet() failed: %v", err)
	}

	want := Fleet()
	for i, v := range g.Vessels() {
		if v.Len() != want[i] {
			t.Errorf("vessel %d length = %d, want %d", i, v.Len(), want[i])
		}
	}
}

func TestPlaceFleetDeterministic(t *testing.T) {
	a, b := NewGrid(false), NewGrid(false)

	ra, err := PlaceFleet(a, Fleet(), rand.New(rand.NewSource(99)), DefaultPlacementParams())
	if err != nil {
		t.Fatalf("PlaceFleet() failed: %v", err)
	}
	rb, err := PlaceFleet(b, Fleet(), rand.New(rand.NewSource(99)), DefaultPlacementParams())
	if err != nil {
		t.Fatalf("PlaceFleet() failed: %v", err)
	}

	if ra != rb {
		t.Errorf("restarts differ: %d vs %d", ra, rb)
	}
	if a.Snapshot() != b.Snapshot() {
		t.Error("same seed should produce the same layout")
	}
}

func TestPlaceFleetRestartsAreBounded(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		restarts, err := PlaceFleet(NewGrid(false), Fleet(), rand.New(rand.NewSource(seed)), DefaultPlacementParams())
		if err != nil {
			t.Fatalf("seed %d: PlaceFleet() failed: %v", seed, err)
		}
		if restarts > DefaultPlacementParams().MaxRestarts {
			t.Errorf("seed %d: %d restarts exceeds the budget", seed, restarts)
		}
	}
}

func TestPlaceFleetExhausted(t *testing.T) {
	// At most three full-length vessels fit with one row between them.
	g := NewGrid(false)
	p := PlacementParams{AttemptsPerVessel: 5, MaxRestarts: 3}

	_, err := PlaceFleet(g, []int{6, 6, 6, 6}, rand.New(rand.NewSource(1)), p)
	if !errors.Is(err, ErrLayoutExhausted) {
		t.Fatalf("PlaceFleet() error = %v, want ErrLayoutExhausted", err)
	}
	if len(g.Vessels()) != 0 || g.AliveCount() != 0 {
		t.Error("an exhausted layout must leave the grid empty")
	}
}

func TestFleetReturnsCopy(t *testing.T) {
	f := Fleet()
	f[0] = 99
	if Fleet()[0] != 3 {
		t.Error("Fleet() must not expose the manifest")
	}
}

func TestVesselCoords(t *testing.T) {
	tests := []struct {
		name   string
		vessel *Vessel
		want   []Coord
	}{
		{"horizontal", NewVessel(C(1, 2), 3, Horizontal), []Coord{C(1, 2), C(1, 3), C(1, 4)}},
		{"vertical", NewVessel(C(0, 5), 2, Vertical), []Coord{C(0, 5), C(1, 5)}},
		{"single", NewVessel(C(4, 4), 1, Vertical), []Coord{C(4, 4)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.vessel.Coords()
			if len(got) != len(tc.want) {
				t.Fatalf("Coords() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Coords()[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
			if tc.vessel.RemainingHits() != tc.vessel.Len() {
				t.Error("a new vessel should be undamaged")
			}
		})
	}
}

func TestPlaceFleetRejectsBadBudget(t *testing.T) {
	tests := []struct {
		name string
		p    PlacementParams
	}{
		{"zero attempts", PlacementParams{AttemptsPerVessel: 0, MaxRestarts: 10}},
		{"negative attempts", PlacementParams{AttemptsPerVessel: -1, MaxRestarts: 10}},
		{"negative restarts", PlacementParams{AttemptsPerVessel: 10, MaxRestarts: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(false)
			_, err := PlaceFleet(g, Fleet(), rand.New(rand.NewSource(1)), tt.p)
			if !errors.Is(err, ErrPlacementBudget) {
				t.Fatalf("PlaceFleet() error = %v, want ErrPlacementBudget", err)
			}
			if len(g.Vessels()) != 0 {
				t.Error("a rejected budget must not place vessels")
			}
		})
	}
}
