package battle

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a shot targets a cell off the grid.
	ErrOutOfRange = errors.New("battle: shot is outside the grid")

	// ErrAlreadyFired is returned when a cell has already been targeted.
	ErrAlreadyFired = errors.New("battle: cell was already fired upon")

	// ErrOutOfBounds is returned when a vessel would extend off the grid.
	ErrOutOfBounds = errors.New("battle: vessel extends outside the grid")

	// ErrCellBlocked is returned when a vessel overlaps or touches another.
	ErrCellBlocked = errors.New("battle: cell is occupied or next to a vessel")

	// ErrLayoutExhausted is returned when no fleet layout was found within
	// the restart budget. It means the manifest is too dense for the grid.
	ErrLayoutExhausted = errors.New("battle: fleet layout attempts exhausted")

	// ErrPlacementBudget is returned when PlacementParams cannot allow a
	// single attempt.
	ErrPlacementBudget = errors.New("battle: placement budget must allow at least one attempt")

	// ErrNotStarted is returned by Step before Setup has run.
	ErrNotStarted = errors.New("battle: match has not been set up")

	// ErrMatchFinished is returned by Step once a winner is known.
	ErrMatchFinished = errors.New("battle: match already finished")
)

// ShotError describes a rejected shot.
type ShotError struct {
	Target Coord
	Err    error
}

func (e *ShotError) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Target.Display())
}

func (e *ShotError) Unwrap() error {
	return e.Err
}

// PlacementError describes a rejected vessel placement.
type PlacementError struct {
	Cell Coord
	Err  error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Cell.Display())
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether a shot error leaves the turn with the shooter.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrAlreadyFired)
}
