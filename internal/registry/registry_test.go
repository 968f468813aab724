package registry

import (
	"testing"

	"github.com/vovakirdan/shadow-paws/internal/core"
)

type stubGame struct {
	id  string
	env Env
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Surface)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register(ModeInfo{ID: "zz-stub-b", Title: "B", Order: 900}, func(env Env) Game {
		return &stubGame{id: "zz-stub-b", env: env}
	})
	Register(ModeInfo{ID: "zz-stub-a", Title: "A", Order: 901}, func(env Env) Game {
		return &stubGame{id: "zz-stub-a", env: env}
	})

	if !Exists("zz-stub-a") || Exists("zz-missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("zz-stub-b", Env{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	stub := g.(*stubGame)
	if stub.env.Store == nil || stub.env.Tones == nil || stub.env.Presenter == nil || stub.env.Logger == nil || stub.env.Now == nil {
		t.Error("Create() should fill default collaborators")
	}
	if stub.env.Config.World.Width != 400 {
		t.Errorf("default config not applied: %+v", stub.env.Config.World)
	}

	if _, err := Create("zz-missing", Env{}); err == nil {
		t.Error("Create() should fail for unknown mode")
	}

	list := List()
	idxA, idxB := -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz-stub-a":
			idxA = i
		case "zz-stub-b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxB > idxA {
		t.Errorf("List() should order by Order: b=%d a=%d", idxB, idxA)
	}

	if info, ok := Info("zz-stub-a"); !ok || info.Title != "A" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(ModeInfo{ID: "zz-dup"}, func(Env) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(ModeInfo{ID: "zz-dup"}, func(Env) Game { return &stubGame{} })
}
