package shadowpaws

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/shadow-paws/internal/config"
)

// ActivePowerUp is a running power-up with its remaining duration in ticks.
type ActivePowerUp struct {
	Kind      PowerUpKind
	Remaining int
}

// PowerUps tracks active power-ups and per-kind cooldowns.
// A kind cannot be activated again while its cooldown is above zero.
type PowerUps struct {
	cfg       config.PowerUpsConfig
	active    []ActivePowerUp
	cooldowns *intmap.Map[PowerUpKind, int]
}

// NewPowerUps creates a manager with every cooldown at zero.
func NewPowerUps(cfg config.PowerUpsConfig) *PowerUps {
	pm := &PowerUps{
		cfg:       cfg,
		active:    make([]ActivePowerUp, 0, len(PowerUpKinds)),
		cooldowns: intmap.New[PowerUpKind, int](len(PowerUpKinds)),
	}
	pm.Reset()
	return pm
}

// Reset clears active power-ups and cooldowns.
func (pm *PowerUps) Reset() {
	pm.active = pm.active[:0]
	pm.cooldowns.Clear()
	for _, k := range PowerUpKinds {
		pm.cooldowns.Put(k, 0)
	}
}

// Activate starts kind if its cooldown has elapsed.
// Returns false, leaving all state unchanged, when it is still cooling down.
func (pm *PowerUps) Activate(kind PowerUpKind) bool {
	if kind == PowerNone || pm.Cooldown(kind) > 0 {
		return false
	}
	t := timing(pm.cfg, kind)
	pm.active = append(pm.active, ActivePowerUp{Kind: kind, Remaining: t.Duration})
	pm.cooldowns.Put(kind, t.Cooldown)
	return true
}

// Update ticks durations and cooldowns. Expired power-ups are removed.
func (pm *PowerUps) Update() {
	live := pm.active[:0]
	for _, a := range pm.active {
		a.Remaining--
		if a.Remaining > 0 {
			live = append(live, a)
		}
	}
	pm.active = live

	for _, k := range PowerUpKinds {
		if cd, _ := pm.cooldowns.Get(k); cd > 0 {
			pm.cooldowns.Put(k, cd-1)
		}
	}
}

// Has reports whether kind is currently active.
func (pm *PowerUps) Has(kind PowerUpKind) bool {
	for _, a := range pm.active {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// Cooldown returns the ticks until kind can be activated again.
func (pm *PowerUps) Cooldown(kind PowerUpKind) int {
	cd, _ := pm.cooldowns.Get(kind)
	return cd
}

// Active returns a copy of the running power-ups in activation order.
func (pm *PowerUps) Active() []ActivePowerUp {
	out := make([]ActivePowerUp, len(pm.active))
	copy(out, pm.active)
	return out
}
