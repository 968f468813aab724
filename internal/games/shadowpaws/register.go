package shadowpaws

import "github.com/vovakirdan/shadow-paws/internal/registry"

var modeOrder = []Mode{ModeEndless, ModeStory, ModeChallenge, ModeTutorial}

func init() {
	for i, m := range modeOrder {
		m := m // per-iteration copy for the factory closure (go 1.21 loop semantics)
		spec := m.Spec()
		registry.Register(registry.ModeInfo{
			ID:          spec.ID,
			Title:       spec.Title,
			Description: spec.Description,
			Order:       i,
			Hidden:      m == ModeTutorial, // reached from the tutorial screen
		}, func(env registry.Env) registry.Game {
			return New(m, env)
		})
	}
}
