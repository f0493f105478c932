package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/session"
)

var (
	flagPlain bool
	flagName  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer",
	Long: `Start a match against the computer.

Your fleet is shown on the left, the enemy waters on the right. Type a
target as "row col", both from 1 to 6, or move the cursor with the arrow
keys and press Enter. A hit earns another shot.

When stdout is not a terminal, or with --plain, the match is played over
plain lines of text, one target per line.

Controls:
  Enter      - Fire at the typed cell, or at the cursor
  Arrows     - Move the cursor
  R          - Rematch (after the match)
  Ctrl+S     - Save a screenshot
  Esc/Ctrl+C - Quit

Examples:
  seabattle play
  seabattle play --name Ada
  seabattle play --plain
  seabattle play --seed 42`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use line-based text instead of the full-screen UI")
	playCmd.Flags().StringVar(&flagName, "name", "", "Your name on the scoreboard")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	quietLogs(cmd)

	cfg := appConfig
	if flagName != "" {
		cfg.Players.A.Name = flagName
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	setup := newSetup(cfg, store)

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	var err error
	if flagPlain || !interactive {
		err = playConsole(setup)
	} else {
		err = tui.Run(setup)
	}
	if errors.Is(err, session.ErrQuit) {
		fmt.Println("Match abandoned.")
		return nil
	}
	return err
}

func playConsole(setup session.Setup) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := console.Play(ctx, setup, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("%s wins in %d shots. Match %s\n", res.WinnerName(), res.Shots[res.Winner], res.MatchID)
	return nil
}
