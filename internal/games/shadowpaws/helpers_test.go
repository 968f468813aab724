package shadowpaws

import (
	"testing"
	"time"

	"github.com/vovakirdan/shadow-paws/internal/audio"
	"github.com/vovakirdan/shadow-paws/internal/config"
	"github.com/vovakirdan/shadow-paws/internal/core"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

type screenLog struct {
	ids []core.ScreenID
}

func (s *screenLog) SetActiveScreen(id core.ScreenID) {
	s.ids = append(s.ids, id)
}

func (s *screenLog) count(id core.ScreenID) int {
	n := 0
	for _, v := range s.ids {
		if v == id {
			n++
		}
	}
	return n
}

type harness struct {
	game    *Game
	kv      *storage.Namespace
	tones   *audio.Recorder
	screens *screenLog
}

var testDay = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// quietConfig disables random special events so scoring is predictable.
func quietConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Events.TriggerChance = 0
	return cfg
}

func newHarness(t *testing.T, m Mode) *harness {
	t.Helper()
	return newHarnessWith(t, m, storage.NewMemoryKV(), testDay)
}

func newHarnessWith(t *testing.T, m Mode, kv *storage.Namespace, now time.Time) *harness {
	t.Helper()
	h := &harness{kv: kv, tones: &audio.Recorder{}, screens: &screenLog{}}
	h.game = New(m, registry.Env{
		Config:    quietConfig(),
		Store:     kv,
		Tones:     h.tones,
		Presenter: h.screens,
		Now:       func() time.Time { return now },
	})
	h.game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return h
}

// drop places an item of kind on top of the cat.
func (h *harness) drop(kind ItemKind) {
	h.game.ents.Items = append(h.game.ents.Items, Item{Kind: kind, Pos: h.game.sprite.Pos})
}

func (h *harness) step() core.StepResult {
	return h.game.Step(core.NewInputFrame())
}

// collect drops kind on the cat and advances one tick.
func (h *harness) collect(kind ItemKind) core.StepResult {
	h.drop(kind)
	return h.step()
}
