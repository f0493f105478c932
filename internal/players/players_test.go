package players_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/players"
	"github.com/vovakirdan/seabattle/internal/registry"
)

type fixedSource struct{ row, col int }

func (s fixedSource) NextTarget(context.Context) (int, int, error) {
	return s.row, s.col, nil
}

func TestRegisteredKinds(t *testing.T) {
	list := registry.List()
	if len(list) != 2 {
		t.Fatalf("List() = %+v, expected two kinds", list)
	}
	if list[0].Kind != players.KindHuman || list[1].Kind != players.KindRandom {
		t.Errorf("List() not sorted by kind: %+v", list)
	}
	if !registry.IsInteractive(players.KindHuman) || registry.IsInteractive(players.KindRandom) {
		t.Error("only the human kind is interactive")
	}
}

func TestCreateHuman(t *testing.T) {
	c, err := registry.Create(players.KindHuman, registry.Deps{Source: fixedSource{2, 3}})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.Name() != "You" {
		t.Errorf("Name() = %q, expected the default", c.Name())
	}
	got, err := c.ChooseTarget(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ChooseTarget() failed: %v", err)
	}
	if got != battle.C(1, 2) {
		t.Errorf("ChooseTarget() = %v, expected (1,2)", got)
	}

	if _, err := registry.Create(players.KindHuman, registry.Deps{}); !errors.Is(err, registry.ErrNoSource) {
		t.Errorf("Create() without source error = %v, expected ErrNoSource", err)
	}
}

func TestCreateRandom(t *testing.T) {
	c, err := registry.Create(players.KindRandom, registry.Deps{
		Name: "Admiral",
		Rand: rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.Name() != "Admiral" {
		t.Errorf("Name() = %q, expected Admiral", c.Name())
	}
	if _, ok := c.(*battle.Automated); !ok {
		t.Errorf("random kind built %T", c)
	}
}

func TestCreateUnknown(t *testing.T) {
	if registry.Exists("oracle") {
		t.Fatal("oracle should not be registered")
	}
	if _, err := registry.Create("oracle", registry.Deps{}); err == nil {
		t.Error("Create() of an unknown kind should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a kind twice should panic")
		}
	}()
	registry.Register(registry.Info{Kind: players.KindRandom}, nil)
}
