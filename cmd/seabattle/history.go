package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagLimit        int
	flagClear        bool
	flagHistoryPlain bool
	flagMatchID      string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches and win totals",
	Long: `Display the most recent matches and how often each player has won.

In a terminal the history opens in a scrollable table; otherwise, or with
--plain, it is printed as text.

Examples:
  seabattle history
  seabattle history --limit 25 --plain
  seabattle history --match 3f1c2a9e-...
  seabattle history --clear`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to print")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print as text instead of the interactive table")
	historyCmd.Flags().StringVar(&flagMatchID, "match", "", "Print the full record of one match")
}

func runHistory(_ *cobra.Command, _ []string) error {
	if !appConfig.Storage.Enabled {
		return errors.New("match history is disabled (storage.enabled is false)")
	}
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil
	}

	if flagMatchID != "" {
		return printMatch(store, flagMatchID)
	}

	if !flagHistoryPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}
	return printHistory(store)
}

func printHistory(store *storage.Store) error {
	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent matches")
	fmt.Println()
	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'seabattle play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-24s  %-12s  %5s  %5s\n", "Date", "Players", "Winner", "Shots", "Acc.")
	fmt.Printf("  %-16s  %-24s  %-12s  %5s  %5s\n", "----", "-------", "------", "-----", "----")
	for _, r := range matches {
		row := tui.HistoryRow(r)
		fmt.Printf("  %-16s  %-24s  %-12s  %5s  %5s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), row[1], row[2], row[3], row[4])
	}

	totals, err := store.WinTotals()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Win totals")
	fmt.Println()
	for _, t := range totals {
		fmt.Printf("  %-16s  %3d of %d\n", t.Name, t.Wins, t.Played)
	}
	return nil
}

func printMatch(store *storage.Store, matchID string) error {
	r, err := store.MatchByID(matchID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no match with id %q", matchID)
	}

	fmt.Printf("Match %s\n", r.MatchID)
	fmt.Printf("  Played:    %s (%s)\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Duration.Round(time.Millisecond))
	fmt.Printf("  Winner:    %s (side %s)\n", r.Winner, r.WinnerSide)
	fmt.Println()
	fmt.Printf("  %-16s  %5s  %5s  %8s\n", "Player", "Shots", "Hits", "Restarts")
	fmt.Printf("  %-16s  %5d  %5d  %8d\n", r.PlayerA, r.ShotsA, r.HitsA, r.RestartsA)
	fmt.Printf("  %-16s  %5d  %5d  %8d\n", r.PlayerB, r.ShotsB, r.HitsB, r.RestartsB)
	return nil
}
