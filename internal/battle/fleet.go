package battle

import (
	"fmt"
	"math/rand"
)

// fleetManifest lists the vessel lengths placed on every grid.
var fleetManifest = []int{3, 2, 2, 1, 1, 1, 1}

// Fleet returns a copy of the fixed fleet manifest.
func Fleet() []int {
	out := make([]int, len(fleetManifest))
	copy(out, fleetManifest)
	return out
}

// PlacementParams bounds the randomized layout search. AttemptsPerVessel
// must be positive and MaxRestarts must not be negative.
type PlacementParams struct {
	AttemptsPerVessel int // random tries per vessel before the layout is discarded
	MaxRestarts       int // full-layout restarts before giving up
}

// DefaultPlacementParams returns the budgets used in normal play.
func DefaultPlacementParams() PlacementParams {
	return PlacementParams{
		AttemptsPerVessel: 500,
		MaxRestarts:       1000,
	}
}

// PlaceFleet lays out the given vessel lengths on g at random.
// When a vessel runs out of attempts the whole layout is discarded and the
// search restarts from an empty grid; there is no per-vessel backtracking.
// Returns the number of restarts it took.
func PlaceFleet(g *Grid, lengths []int, rng *rand.Rand, p PlacementParams) (int, error) {
	if p.AttemptsPerVessel <= 0 || p.MaxRestarts < 0 {
		return 0, fmt.Errorf("%w: %d attempts, %d restarts", ErrPlacementBudget, p.AttemptsPerVessel, p.MaxRestarts)
	}

	for restarts := 0; restarts <= p.MaxRestarts; restarts++ {
		g.clear()
		if placeAll(g, lengths, rng, p.AttemptsPerVessel) {
			return restarts, nil
		}
	}

	g.clear()
	return p.MaxRestarts, ErrLayoutExhausted
}

// placeAll tries to place every length in order. It returns false as soon
// as one vessel exhausts its attempt budget.
func placeAll(g *Grid, lengths []int, rng *rand.Rand, attempts int) bool {
	for _, length := range lengths {
		placed := false
		for i := 0; i < attempts; i++ {
			bow := C(rng.Intn(GridSize), rng.Intn(GridSize))
			o := Orientation(rng.Intn(2))
			if err := g.PlaceVessel(NewVessel(bow, length, o)); err == nil {
				placed = true
				break
			}
		}
		if !placed {
			return false
		}
	}
	return true
}
