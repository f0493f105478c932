package session

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/seabattle/internal/battle"
)

// Narrate turns a match event into a line of commentary. It returns an
// empty string for events that need no text.
func Narrate(ev battle.Event, names [2]string) string {
	switch e := ev.(type) {
	case battle.SetupEvent:
		return fmt.Sprintf("Fleets are in position. %s fires first.", names[e.First])

	case battle.ShotEvent:
		who := names[e.Side]
		line := fmt.Sprintf("%s fires at %s: %s", who, e.Target.Display(), e.Outcome)
		switch e.Outcome {
		case battle.Hit:
			return line + "! Fire again."
		case battle.Sunk:
			left := e.AliveCount[e.Side.Other()]
			return fmt.Sprintf("%s, a %d-deck vessel goes down! %s has %d left.",
				line, e.VesselLen, names[e.Side.Other()], left)
		default:
			return line + "."
		}

	case battle.RejectedEvent:
		return RejectReason(e.Err)

	case battle.TurnPassedEvent:
		return fmt.Sprintf("%s to move.", names[e.To])

	case battle.FinishedEvent:
		return fmt.Sprintf("%s wins!", e.Result.WinnerName())
	}
	return ""
}

// RejectReason explains why a target was refused.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, battle.ErrOutOfRange):
		return fmt.Sprintf("Coordinates must be between 1 and %d.", battle.GridSize)
	case errors.Is(err, battle.ErrAlreadyFired):
		return "That cell has already been fired at."
	default:
		return err.Error()
	}
}
