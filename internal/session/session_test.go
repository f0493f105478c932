package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/config"
	_ "github.com/vovakirdan/seabattle/internal/players"
	"github.com/vovakirdan/seabattle/internal/registry"
	"github.com/vovakirdan/seabattle/internal/session"
)

type memRecorder struct {
	saved []battle.Result
	err   error
}

func (r *memRecorder) SaveMatch(res battle.Result) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.saved = append(r.saved, res)
	return int64(len(r.saved)), nil
}

func computerConfig() config.Config {
	cfg := config.Default()
	cfg.Players.A = config.PlayerConfig{Kind: "random", Name: "North"}
	cfg.Players.B = config.PlayerConfig{Kind: "random", Name: "South"}
	return cfg
}

func TestNewMatchFromConfig(t *testing.T) {
	rec := &memRecorder{}
	s := session.Setup{Config: computerConfig(), Seed: 7, Recorder: rec}

	var events int
	m, err := s.NewMatch(session.Input{}, func(battle.Event) { events++ })
	if err != nil {
		t.Fatalf("NewMatch() failed: %v", err)
	}
	if m.Combatant(battle.SideA).Name() != "North" || m.Combatant(battle.SideB).Name() != "South" {
		t.Error("names were not taken from the config")
	}
	if !m.Grid(battle.SideA).RevealShips() || m.Grid(battle.SideB).RevealShips() {
		t.Error("side A should be revealed and side B hidden by default")
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if events == 0 {
		t.Error("observer was not attached")
	}

	s.Record(res)
	if len(rec.saved) != 1 || rec.saved[0].MatchID != m.ID() {
		t.Errorf("Record() saved %+v", rec.saved)
	}
}

func TestNewMatchSeedIsReproducible(t *testing.T) {
	s := session.Setup{Config: computerConfig(), Seed: 11}

	run := func() battle.Result {
		m, err := s.NewMatch(session.Input{}, nil, battle.WithID("fixed"))
		if err != nil {
			t.Fatalf("NewMatch() failed: %v", err)
		}
		res, err := m.Run(context.Background())
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return res
	}

	a, b := run(), run()
	if a.Winner != b.Winner || a.Shots != b.Shots || a.Hits != b.Hits {
		t.Errorf("same seed gave different matches: %+v vs %+v", a, b)
	}
}

func TestNewMatchNeedsSourceForHuman(t *testing.T) {
	s := session.Setup{Config: config.Default()}

	if _, err := s.NewMatch(session.Input{}, nil); !errors.Is(err, registry.ErrNoSource) {
		t.Errorf("NewMatch() error = %v, expected ErrNoSource", err)
	}
	if got := s.Interactive(); got != [2]bool{true, false} {
		t.Errorf("Interactive() = %v", got)
	}
}

func TestRecordFailureIsNotFatal(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	s := session.Setup{Config: computerConfig(), Recorder: rec}
	s.Record(battle.Result{MatchID: "x"})

	// No recorder at all is also fine.
	session.Setup{}.Record(battle.Result{})
}

func TestNarrate(t *testing.T) {
	names := [2]string{"You", "Computer"}

	tests := []struct {
		name string
		ev   battle.Event
		want string
	}{
		{
			"setup",
			battle.SetupEvent{First: battle.SideA},
			"Fleets are in position. You fires first.",
		},
		{
			"miss",
			battle.ShotEvent{Side: battle.SideB, Target: battle.C(1, 2), Outcome: battle.Miss},
			"Computer fires at 2 3: miss.",
		},
		{
			"hit",
			battle.ShotEvent{Side: battle.SideA, Target: battle.C(0, 0), Outcome: battle.Hit},
			"You fires at 1 1: hit! Fire again.",
		},
		{
			"sunk",
			battle.ShotEvent{Side: battle.SideA, Target: battle.C(5, 5), Outcome: battle.Sunk,
				VesselLen: 3, AliveCount: [2]int{7, 4}},
			"You fires at 6 6: sunk, a 3-deck vessel goes down! Computer has 4 left.",
		},
		{
			"already fired",
			battle.RejectedEvent{Err: &battle.ShotError{Err: battle.ErrAlreadyFired}},
			"That cell has already been fired at.",
		},
		{
			"out of range",
			battle.RejectedEvent{Err: battle.ErrOutOfRange},
			"Coordinates must be between 1 and 6.",
		},
		{
			"turn passes",
			battle.TurnPassedEvent{From: battle.SideA, To: battle.SideB},
			"Computer to move.",
		},
		{
			"finished",
			battle.FinishedEvent{Result: battle.Result{Winner: battle.SideB, Names: names}},
			"Computer wins!",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := session.Narrate(tc.ev, names); got != tc.want {
				t.Errorf("Narrate() = %q, want %q", got, tc.want)
			}
		})
	}
}
