package battle

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vovakirdan/seabattle/internal/telemetry"
)

// Side identifies one of the two players in a match.
type Side uint8

const (
	SideA Side = iota // moves first by default; the human in play mode
	SideB
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "?"
	}
}

// Phase is the match lifecycle state.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseInProgress
	PhaseFinished
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInProgress:
		return "in_progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// LayoutFunc populates a side's grid before play and returns the number of
// full-layout restarts it needed.
type LayoutFunc func(side Side, g *Grid, rng *rand.Rand) (int, error)

// Result summarises a finished match.
type Result struct {
	MatchID  string
	Winner   Side
	Names    [2]string
	Shots    [2]int // legal shots fired by each side
	Hits     [2]int // shots that hit or sank
	Restarts [2]int // layout restarts per side
	Duration time.Duration
}

// WinnerName returns the display name of the winning side.
func (r Result) WinnerName() string {
	return r.Names[r.Winner]
}

// Match runs a game between two combatants, each with its own grid.
type Match struct {
	id      string
	phase   Phase
	active  Side
	winner  Side
	players [2]Combatant
	grids   [2]*Grid

	rng       *rand.Rand
	placement PlacementParams
	layout    LayoutFunc
	observer  Observer
	logger    *log.Logger

	shots    [2]int
	hits     [2]int
	restarts [2]int
	started  time.Time
	finished time.Time
}

// Option configures a Match.
type Option func(*Match)

// WithID overrides the generated match identifier.
func WithID(id string) Option {
	return func(m *Match) { m.id = id }
}

// WithSeed makes layouts reproducible. A seed of 0 keeps the time-based seed.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		if seed != 0 {
			m.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRand supplies the RNG used for fleet layout.
func WithRand(rng *rand.Rand) Option {
	return func(m *Match) { m.rng = rng }
}

// WithPlacement sets the layout search budgets.
func WithPlacement(p PlacementParams) Option {
	return func(m *Match) { m.placement = p }
}

// WithLayout replaces randomized fleet placement.
func WithLayout(fn LayoutFunc) Option {
	return func(m *Match) { m.layout = fn }
}

// WithObserver registers a callback for match events.
func WithObserver(obs Observer) Option {
	return func(m *Match) { m.observer = obs }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) { m.logger = l }
}

// WithReveal sets whether each side's unhit vessels are shown to a viewer.
func WithReveal(a, b bool) Option {
	return func(m *Match) {
		m.grids[SideA].SetRevealShips(a)
		m.grids[SideB].SetRevealShips(b)
	}
}

// WithFirst chooses which side fires first.
func WithFirst(s Side) Option {
	return func(m *Match) { m.active = s }
}

// NewMatch creates a match in the setup phase. Side A's ships are revealed
// and side B's hidden unless WithReveal says otherwise.
func NewMatch(a, b Combatant, opts ...Option) *Match {
	m := &Match{
		id:        uuid.NewString(),
		phase:     PhaseSetup,
		active:    SideA,
		players:   [2]Combatant{a, b},
		grids:     [2]*Grid{NewGrid(true), NewGrid(false)},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		placement: DefaultPlacementParams(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.layout == nil {
		m.layout = m.randomLayout
	}
	return m
}

// randomLayout places the standard fleet.
func (m *Match) randomLayout(_ Side, g *Grid, rng *rand.Rand) (int, error) {
	return PlaceFleet(g, Fleet(), rng, m.placement)
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Phase returns the current lifecycle phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Active returns the side whose turn it is.
func (m *Match) Active() Side {
	return m.active
}

// Winner returns the winning side once the match is finished.
func (m *Match) Winner() (Side, bool) {
	return m.winner, m.phase == PhaseFinished
}

// Grid returns the grid owned by side.
func (m *Match) Grid(s Side) *Grid {
	return m.grids[s]
}

// Combatant returns the player for side.
func (m *Match) Combatant(s Side) Combatant {
	return m.players[s]
}

// Setup places both fleets and moves the match into play.
// Calling it again after setup is a no-op.
func (m *Match) Setup(ctx context.Context) error {
	if m.phase != PhaseSetup {
		return nil
	}

	_, span := telemetry.Tracer("match").Start(ctx, "match.setup")
	defer span.End()

	for _, s := range []Side{SideA, SideB} {
		restarts, err := m.layout(s, m.grids[s], m.rng)
		if err != nil {
			m.grids[SideA].clear()
			m.grids[SideB].clear()
			m.restarts = [2]int{}
			span.RecordError(err)
			span.SetStatus(codes.Error, "layout failed")
			return fmt.Errorf("battle: placing fleet for side %s: %w", s, err)
		}
		m.restarts[s] = restarts
		m.logger.Debug("fleet placed", "match", m.id, "side", s,
			"vessels", len(m.grids[s].Vessels()), "restarts", restarts)
	}
	span.SetAttributes(
		attribute.Int("restarts.a", m.restarts[SideA]),
		attribute.Int("restarts.b", m.restarts[SideB]),
	)

	m.phase = PhaseInProgress
	m.started = time.Now()
	m.emit(SetupEvent{
		MatchID:  m.id,
		Grids:    m.snapshots(),
		Restarts: m.restarts,
		First:    m.active,
	})
	return nil
}

// Step plays one turn for the active side: it keeps asking for a target
// until a shot is legal, resolves it, then keeps the turn on a hit or sink
// and passes it on a miss.
func (m *Match) Step(ctx context.Context) (Shot, error) {
	switch m.phase {
	case PhaseSetup:
		return Shot{}, ErrNotStarted
	case PhaseFinished:
		return Shot{}, ErrMatchFinished
	}

	side := m.active
	shooter := m.players[side]
	own, target := m.grids[side], m.grids[side.Other()]

	ctx, span := telemetry.Tracer("match").Start(ctx, "match.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("match.id", m.id),
		attribute.String("side", side.String()),
		attribute.String("player", shooter.Name()),
	)

	for {
		c, err := shooter.ChooseTarget(ctx, own, target)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "no target")
			return Shot{}, fmt.Errorf("battle: %s could not choose a target: %w", shooter.Name(), err)
		}

		shot, err := target.FireAt(c)
		if err != nil {
			if !IsRetryable(err) {
				span.RecordError(err)
				return Shot{}, err
			}
			m.logger.Debug("shot rejected", "match", m.id, "side", side, "target", c, "error", err)
			if rh, ok := shooter.(RejectionHandler); ok {
				rh.Rejected(c, err)
			}
			m.emit(RejectedEvent{Side: side, Target: c, Err: err})
			continue
		}

		m.record(side, shot)
		span.SetAttributes(
			attribute.String("target", c.String()),
			attribute.String("outcome", shot.Outcome.String()),
		)
		return shot, nil
	}
}

// record applies the bookkeeping that follows a legal shot.
func (m *Match) record(side Side, shot Shot) {
	m.shots[side]++
	if shot.Outcome != Miss {
		m.hits[side]++
	}

	ev := ShotEvent{
		Side:       side,
		Target:     shot.Target,
		Outcome:    shot.Outcome,
		Grid:       m.grids[side.Other()].Snapshot(),
		AliveCount: [2]int{m.grids[SideA].AliveCount(), m.grids[SideB].AliveCount()},
	}
	if shot.Vessel != nil {
		ev.VesselLen = shot.Vessel.Len()
		ev.Remaining = shot.Vessel.RemainingHits()
	}
	m.logger.Debug("shot", "match", m.id, "side", side, "target", shot.Target,
		"outcome", shot.Outcome, "alive_a", ev.AliveCount[SideA], "alive_b", ev.AliveCount[SideB])
	m.emit(ev)

	// Win check runs after every single shot.
	switch {
	case m.grids[SideA].AliveCount() == 0:
		m.finish(SideB)
		return
	case m.grids[SideB].AliveCount() == 0:
		m.finish(SideA)
		return
	}

	if shot.Outcome == Miss {
		m.active = side.Other()
		m.emit(TurnPassedEvent{From: side, To: m.active})
	}
}

func (m *Match) finish(winner Side) {
	m.phase = PhaseFinished
	m.winner = winner
	m.finished = time.Now()
	res := m.Result()
	m.logger.Debug("match finished", "match", m.id, "winner", res.WinnerName(),
		"shots_a", res.Shots[SideA], "shots_b", res.Shots[SideB])
	m.emit(FinishedEvent{Result: res, Grids: m.snapshots()})
}

// Run sets the match up if needed and plays until a side wins.
func (m *Match) Run(ctx context.Context) (Result, error) {
	ctx, span := telemetry.Tracer("match").Start(ctx, "match.run")
	defer span.End()

	if err := m.Setup(ctx); err != nil {
		return Result{}, err
	}
	for m.phase != PhaseFinished {
		if _, err := m.Step(ctx); err != nil {
			span.RecordError(err)
			return Result{}, err
		}
	}

	res := m.Result()
	span.SetAttributes(
		attribute.String("winner", res.WinnerName()),
		attribute.Int("shots", res.Shots[SideA]+res.Shots[SideB]),
	)
	return res, nil
}

// Result returns the match statistics. Winner is only meaningful once the
// match is finished.
func (m *Match) Result() Result {
	end := m.finished
	if end.IsZero() {
		end = time.Now()
	}
	var d time.Duration
	if !m.started.IsZero() {
		d = end.Sub(m.started)
	}
	return Result{
		MatchID:  m.id,
		Winner:   m.winner,
		Names:    [2]string{m.players[SideA].Name(), m.players[SideB].Name()},
		Shots:    m.shots,
		Hits:     m.hits,
		Restarts: m.restarts,
		Duration: d,
	}
}

func (m *Match) snapshots() [2]Snapshot {
	return [2]Snapshot{m.grids[SideA].Snapshot(), m.grids[SideB].Snapshot()}
}

func (m *Match) emit(ev Event) {
	if m.observer != nil {
		m.observer(ev)
	}
}
