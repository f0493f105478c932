package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/players"
	"github.com/vovakirdan/seabattle/internal/registry"
	"github.com/vovakirdan/seabattle/internal/session"
)

var (
	flagMatches int
	flagVerbose bool
	flagBoards  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let two computer players fight",
	Long: `Play computer against computer without any input.

A single match prints the winner and the shot counts. With --matches the
batch is played back to back and win totals are printed at the end.
Human sides in the configuration are replaced by random shooters.

Examples:
  seabattle sim
  seabattle sim --verbose --boards
  seabattle sim --matches 500 --seed 7`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMatches, "matches", 1, "Number of matches to play")
	simCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Print every shot")
	simCmd.Flags().BoolVar(&flagBoards, "boards", false, "Draw both boards after every shot (with --verbose)")
}

// automated replaces interactive sides with random shooters.
func automated(cfg config.Config) config.Config {
	sides := []*config.PlayerConfig{&cfg.Players.A, &cfg.Players.B}
	for i, p := range sides {
		if registry.IsInteractive(p.Kind) {
			p.Kind = players.KindRandom
			p.Name = "Computer " + battle.Side(i).String()
		}
	}
	if cfg.Players.A.Name == cfg.Players.B.Name {
		cfg.Players.A.Name += " A"
		cfg.Players.B.Name += " B"
	}
	return cfg
}

// simTally aggregates a batch of results.
type simTally struct {
	played   int
	wins     map[string]int
	shots    int
	restarts int
	elapsed  time.Duration
}

func (t *simTally) add(res battle.Result) {
	if t.wins == nil {
		t.wins = make(map[string]int)
	}
	t.played++
	t.wins[res.WinnerName()]++
	t.shots += res.Shots[battle.SideA] + res.Shots[battle.SideB]
	t.restarts += res.Restarts[battle.SideA] + res.Restarts[battle.SideB]
	t.elapsed += res.Duration
}

func (t *simTally) print(w io.Writer) {
	if t.played == 0 {
		fmt.Fprintln(w, "No matches finished.")
		return
	}
	names := make([]string, 0, len(t.wins))
	for name := range t.wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if t.wins[names[i]] != t.wins[names[j]] {
			return t.wins[names[i]] > t.wins[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(w, "Played %d matches\n\n", t.played)
	fmt.Fprintf(w, "  %-16s  %5s  %6s\n", "Player", "Wins", "Share")
	fmt.Fprintf(w, "  %-16s  %5s  %6s\n", "------", "----", "-----")
	for _, name := range names {
		share := 100 * float64(t.wins[name]) / float64(t.played)
		fmt.Fprintf(w, "  %-16s  %5d  %5.1f%%\n", name, t.wins[name], share)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Average shots per match: %.1f\n", float64(t.shots)/float64(t.played))
	fmt.Fprintf(w, "Layout restarts: %d\n", t.restarts)
	fmt.Fprintf(w, "Total time: %s\n", t.elapsed.Round(time.Millisecond))
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagMatches < 1 {
		return fmt.Errorf("--matches must be at least 1")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	setup := newSetup(automated(appConfig), store)

	var tally simTally
	for i := 0; i < flagMatches; i++ {
		if flagSeed != 0 {
			setup.Seed = flagSeed + int64(i)
		}
		res, err := simulate(ctx, setup, os.Stdout)
		if err != nil {
			tally.print(os.Stdout)
			return err
		}
		tally.add(res)

		if flagMatches == 1 {
			fmt.Printf("%s wins in %d shots (%s %d, %s %d).\n",
				res.WinnerName(), res.Shots[res.Winner],
				res.Names[battle.SideA], res.Shots[battle.SideA],
				res.Names[battle.SideB], res.Shots[battle.SideB])
			return nil
		}
	}

	tally.print(os.Stdout)
	return nil
}

// simulate plays and records one automated match. With --verbose the
// commentary goes to w.
func simulate(ctx context.Context, setup session.Setup, w io.Writer) (battle.Result, error) {
	var obs battle.Observer
	var pr *console.Printer
	if flagVerbose {
		pr = console.NewPrinter(w, setup.Glyphs(), flagBoards)
		obs = pr.Observe
	}

	m, err := setup.NewMatch(session.Input{}, obs)
	if err != nil {
		return battle.Result{}, err
	}
	if pr != nil {
		pr.SetNames(m.Combatant(battle.SideA).Name(), m.Combatant(battle.SideB).Name())
	}

	res, err := m.Run(ctx)
	if err != nil {
		return res, err
	}
	setup.Record(res)
	return res, nil
}
