package battle

import (
	"context"
	"math/rand"
)

// Combatant chooses where to fire next. Implementations may be human
// (reading from a TargetSource) or automated.
type Combatant interface {
	// Name returns a display name such as "You" or "Computer".
	Name() string

	// ChooseTarget returns the next coordinate to fire at on opponent.
	// An error aborts the match.
	ChooseTarget(ctx context.Context, own, opponent *Grid) (Coord, error)
}

// RejectionHandler is implemented by combatants that want to be told when
// a chosen target was refused. The turn is not consumed in that case.
type RejectionHandler interface {
	Rejected(target Coord, err error)
}

// TargetSource supplies 1-based (row, col) pairs typed by a player.
// Malformed input must be handled by the source itself; it only returns an
// error when no more input can be obtained.
type TargetSource interface {
	NextTarget(ctx context.Context) (row, col int, err error)
}

// Interactive is a human combatant fed by a TargetSource.
type Interactive struct {
	name     string
	source   TargetSource
	onReject func(Coord, error)
}

var _ Combatant = (*Interactive)(nil)
var _ RejectionHandler = (*Interactive)(nil)

// NewInteractive creates a human combatant. onReject may be nil.
func NewInteractive(name string, source TargetSource, onReject func(Coord, error)) *Interactive {
	return &Interactive{
		name:     name,
		source:   source,
		onReject: onReject,
	}
}

// Name returns the display name.
func (p *Interactive) Name() string {
	return p.name
}

// ChooseTarget asks the source for a 1-based pair and converts it.
func (p *Interactive) ChooseTarget(ctx context.Context, _, _ *Grid) (Coord, error) {
	row, col, err := p.source.NextTarget(ctx)
	if err != nil {
		return Coord{}, err
	}
	return C(row-1, col-1), nil
}

// Rejected forwards the refusal to the UI.
func (p *Interactive) Rejected(target Coord, err error) {
	if p.onReject != nil {
		p.onReject(target, err)
	}
}

// Automated fires at uniformly random cells.
type Automated struct {
	name string
	rng  *rand.Rand
}

var _ Combatant = (*Automated)(nil)

// NewAutomated creates a computer combatant drawing from rng.
func NewAutomated(name string, rng *rand.Rand) *Automated {
	return &Automated{name: name, rng: rng}
}

// Name returns the display name.
func (p *Automated) Name() string {
	return p.name
}

// ChooseTarget picks any cell; already-fired cells are rejected by the grid
// and the match asks again.
func (p *Automated) ChooseTarget(ctx context.Context, _, _ *Grid) (Coord, error) {
	if err := ctx.Err(); err != nil {
		return Coord{}, err
	}
	return C(p.rng.Intn(GridSize), p.rng.Intn(GridSize)), nil
}
