package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return stubGame{id: id} })
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zz-test-b")
	register(t, "zz-test-a")

	if !Exists("zz-test-a") {
		t.Fatal("Exists(zz-test-a) = false, expected true")
	}

	g, err := Create("zz-test-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz-test-b" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "zz-test-b")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz-test-a" && info.Title != "Stub zz-test-a" {
			t.Errorf("Title = %q, expected %q", info.Title, "Stub zz-test-a")
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "zz-test-dup")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-test-dup", func() Game { return stubGame{id: "zz-test-dup"} })
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty id")
		}
	}()
	Register(" ", func() Game { return stubGame{} })
}
