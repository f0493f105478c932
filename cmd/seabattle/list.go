package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available combatant kinds",
	Long: `Shows every combatant kind that can be named in players.a.kind or
players.b.kind of the configuration file.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	kinds := registry.List()

	if len(kinds) == 0 {
		fmt.Println("No combatants available.")
		return
	}

	fmt.Println("Available combatants:")
	fmt.Println()

	maxKindLen := 4 // "Kind" header
	for _, k := range kinds {
		if len(k.Kind) > maxKindLen {
			maxKindLen = len(k.Kind)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxKindLen, "Kind", "Input", "Description")
	fmt.Printf("  %-*s  %-5s  %s\n", maxKindLen, "----", "-----", "-----------")
	for _, k := range kinds {
		input := "no"
		if k.Interactive {
			input = "yes"
		}
		fmt.Printf("  %-*s  %-5s  %s\n", maxKindLen, k.Kind, input, k.Title)
	}

	fmt.Println()
	fmt.Printf("Current match: %s (%s) vs %s (%s)\n",
		appConfig.Players.A.Name, appConfig.Players.A.Kind,
		appConfig.Players.B.Name, appConfig.Players.B.Kind)
}
