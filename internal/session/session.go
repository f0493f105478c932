// Package session turns configuration into a ready-to-run match. The
// console, TUI, SSH and simulation front-ends all build matches through it.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/registry"
	"github.com/vovakirdan/seabattle/internal/storage"
)

// Recorder persists finished matches. *storage.Store implements it.
type Recorder interface {
	SaveMatch(res battle.Result) (int64, error)
}

var _ Recorder = (*storage.Store)(nil)

// Setup holds what every match in a process shares.
type Setup struct {
	Config   config.Config
	Seed     int64 // 0 picks a time-based seed per match
	Logger   *log.Logger
	Recorder Recorder // nil disables history
}

// Input wires interactive sides to a front-end.
type Input struct {
	Source   battle.TargetSource
	OnReject func(battle.Coord, error)
}

// Glyphs returns the configured board symbols.
func (s Setup) Glyphs() core.Glyphs {
	d := s.Config.Display
	return core.GlyphsFrom(d.Ship, d.Water, d.Hit, d.Miss)
}

// NewMatch builds both combatants from the configuration and returns a
// match in the setup phase.
func (s Setup) NewMatch(in Input, obs battle.Observer, extra ...battle.Option) (*battle.Match, error) {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	players := [2]config.PlayerConfig{s.Config.Players.A, s.Config.Players.B}
	var combatants [2]battle.Combatant
	for i, p := range players {
		c, err := registry.Create(p.Kind, registry.Deps{
			Name:     p.Name,
			Rand:     rand.New(rand.NewSource(seed + int64(i) + 1)),
			Source:   in.Source,
			OnReject: in.OnReject,
		})
		if err != nil {
			return nil, fmt.Errorf("session: side %s: %w", battle.Side(i), err)
		}
		combatants[i] = c
	}

	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := []battle.Option{
		battle.WithSeed(seed),
		battle.WithPlacement(battle.PlacementParams{
			AttemptsPerVessel: s.Config.Placement.AttemptsPerVessel,
			MaxRestarts:       s.Config.Placement.MaxRestarts,
		}),
		battle.WithReveal(true, s.Config.Display.ShowEnemy),
		battle.WithLogger(logger),
		battle.WithObserver(obs),
	}
	return battle.NewMatch(combatants[0], combatants[1], append(opts, extra...)...), nil
}

// Interactive reports which sides are played by a person.
func (s Setup) Interactive() [2]bool {
	return [2]bool{
		registry.IsInteractive(s.Config.Players.A.Kind),
		registry.IsInteractive(s.Config.Players.B.Kind),
	}
}

// Record stores a finished match. Failures are logged, never fatal.
func (s Setup) Record(res battle.Result) {
	if s.Recorder == nil {
		return
	}
	if _, err := s.Recorder.SaveMatch(res); err != nil && s.Logger != nil {
		s.Logger.Warn("could not record match", "match", res.MatchID, "error", err)
	}
}

// ErrQuit is returned by front-ends when the player leaves mid-match.
var ErrQuit = errors.New("session: player quit")
