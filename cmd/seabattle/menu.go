package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu to pick a mode",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. After a match or the
history browser closes, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  seabattle menu
  seabattle menu --db ./history.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("menu needs a terminal; use 'seabattle play --plain' instead")
	}
	quietLogs(cmd)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	for {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}

		action, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}

		switch action {
		case tui.MenuNone:
			return nil

		case tui.MenuPlay:
			err = tui.Run(newSetup(appConfig, store))

		case tui.MenuWatch:
			err = tui.Run(newSetup(automated(appConfig), store))

		case tui.MenuHistory:
			if store == nil {
				fmt.Fprintln(os.Stderr, "Match history is not available.")
				continue
			}
			err = tui.RunHistory(store, width, height)
		}

		if err != nil && !errors.Is(err, session.ErrQuit) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
