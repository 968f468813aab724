package shadowpaws

import (
	"github.com/vovakirdan/shadow-paws/internal/config"
	"github.com/vovakirdan/shadow-paws/internal/core"
)

// EventKind names a special event.
type EventKind int

const (
	EventNone     EventKind = iota
	EventFriday13           // adverse: mostly bad items, 1.5x points
	EventFullMoon           // favorable: double points
)

func (e EventKind) String() string {
	switch e {
	case EventFriday13:
		return "Friday 13th"
	case EventFullMoon:
		return "Full Moon"
	default:
		return "none"
	}
}

// Events holds the two independent special-event timers.
// Both may be active at the same time.
type Events struct {
	Friday13      bool
	Friday13Timer int
	FullMoon      bool
	FullMoonTimer int
}

// Modifiers returns the scoring modifiers of the active events.
func (ev *Events) Modifiers() Modifiers {
	return Modifiers{Favorable: ev.FullMoon, Adverse: ev.Friday13}
}

// Update expires running events, then rolls for a new one.
// At most one event starts per tick, and a running event is never
// retriggered.
func (ev *Events) Update(cfg config.EventsConfig, rng *core.SimpleRNG) EventKind {
	if ev.Friday13 {
		ev.Friday13Timer--
		if ev.Friday13Timer <= 0 {
			ev.Friday13 = false
			ev.Friday13Timer = 0
		}
	}
	if ev.FullMoon {
		ev.FullMoonTimer--
		if ev.FullMoonTimer <= 0 {
			ev.FullMoon = false
			ev.FullMoonTimer = 0
		}
	}

	if rng.Float64() >= cfg.TriggerChance {
		return EventNone
	}

	// One sub-draw split into disjoint bands.
	u := rng.Float64()
	switch {
	case u < cfg.AdverseChance:
		if !ev.Friday13 {
			ev.Start(EventFriday13, cfg.AdverseTicks)
			return EventFriday13
		}
	case u < cfg.AdverseChance+cfg.FavorableChance:
		if !ev.FullMoon {
			ev.Start(EventFullMoon, cfg.FavorableTicks)
			return EventFullMoon
		}
	}
	return EventNone
}

// Start forces an event on for ticks, replacing any remaining time.
// Negative ticks are clamped to 0, so the event ends on the next Update.
func (ev *Events) Start(kind EventKind, ticks int) {
	ticks = max(ticks, 0)
	switch kind {
	case EventFriday13:
		ev.Friday13 = true
		ev.Friday13Timer = ticks
	case EventFullMoon:
		ev.FullMoon = true
		ev.FullMoonTimer = ticks
	}
}
