package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/neonrun/internal/core"
)

type stubGame struct{ opts Options }

func (stubGame) ID() string                           { return "stub" }
func (stubGame) Title() string                        { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", "Stub", func(opts Options) (Game, error) {
		return stubGame{opts: opts}, nil
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-stub", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.(stubGame).opts.Difficulty != "hard" {
		t.Error("Create should pass options to the factory")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List should include the registered game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", Options{}); err == nil {
		t.Error("Create of unknown game should fail")
	}
}

func TestCreateFactoryError(t *testing.T) {
	sentinel := errors.New("bad config")
	Register("zz-broken", "Broken", func(Options) (Game, error) {
		return nil, sentinel
	})

	_, err := Create("zz-broken", Options{})
	if !errors.Is(err, sentinel) {
		t.Errorf("Create should wrap the factory error, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", "B", func(Options) (Game, error) { return stubGame{}, nil })
	Register("zz-a", "A", func(Options) (Game, error) { return stubGame{}, nil })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
