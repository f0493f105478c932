// Package players registers the built-in combatant kinds.
// Import it for side effects.
package players

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/registry"
)

const (
	KindHuman  = "human"
	KindRandom = "random"
)

func init() {
	registry.Register(registry.Info{
		Kind:        KindHuman,
		Title:       "Human at the keyboard",
		Interactive: true,
	}, func(d registry.Deps) (battle.Combatant, error) {
		return battle.NewInteractive(nameOr(d.Name, "You"), d.Source, d.OnReject), nil
	})

	registry.Register(registry.Info{
		Kind:  KindRandom,
		Title: "Computer firing at random cells",
	}, func(d registry.Deps) (battle.Combatant, error) {
		rng := d.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return battle.NewAutomated(nameOr(d.Name, "Computer"), rng), nil
	})
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
