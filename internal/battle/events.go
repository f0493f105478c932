package battle

// Event is emitted by a Match to its observer as play progresses.
type Event interface {
	matchEvent()
}

// Observer receives match events. It is called synchronously from the
// goroutine running the match.
type Observer func(Event)

// SetupEvent is sent once both fleets are placed.
type SetupEvent struct {
	MatchID  string
	Grids    [2]Snapshot
	Restarts [2]int
	First    Side
}

func (SetupEvent) matchEvent() {}

// RejectedEvent is sent when a chosen target was refused.
type RejectedEvent struct {
	Side   Side
	Target Coord
	Err    error
}

func (RejectedEvent) matchEvent() {}

// ShotEvent is sent after every legal shot.
type ShotEvent struct {
	Side       Side // who fired
	Target     Coord
	Outcome    Outcome
	VesselLen  int // length of the vessel hit or sunk, 0 on Miss
	Remaining  int // hits left on that vessel
	Grid       Snapshot
	AliveCount [2]int
}

func (ShotEvent) matchEvent() {}

// TurnPassedEvent is sent when a miss hands the turn to the other side.
type TurnPassedEvent struct {
	From Side
	To   Side
}

func (TurnPassedEvent) matchEvent() {}

// FinishedEvent is sent once a side has no vessels left.
type FinishedEvent struct {
	Result Result
	Grids  [2]Snapshot
}

func (FinishedEvent) matchEvent() {}
