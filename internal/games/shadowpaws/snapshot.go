package shadowpaws

import "math"

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Tick       int
	Mode       Mode
	Score      int
	Lives      int
	Level      int
	Combo      int
	MaxCombo   int
	Items      int
	Streak     int
	Chapter    int
	Friday13   int // remaining ticks, 0 when inactive
	FullMoon   int
	Active     bool
	CatX, CatY float64
	ItemData   []uint64 // kind, x bits, y bits per item
	PowerData  []int    // kind, remaining per active power-up
	RNGState   uint64
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		Score:    g.progress.Score,
		Lives:    g.progress.Lives,
		Level:    g.progress.Level,
		Combo:    g.progress.Combo,
		MaxCombo: g.progress.MaxCombo,
		Items:    g.progress.ItemsCollected,
		Streak:   g.progress.Streak,
		Chapter:  g.chapter,
		Friday13: g.events.Friday13Timer,
		FullMoon: g.events.FullMoonTimer,
		Active:   g.active,
		CatX:     g.sprite.Pos.X,
		CatY:     g.sprite.Pos.Y,
	}
	if g.rng != nil {
		snap.RNGState = g.rng.State()
	}

	snap.ItemData = make([]uint64, 0, len(g.ents.Items)*3)
	for _, it := range g.ents.Items {
		snap.ItemData = append(snap.ItemData,
			uint64(it.Kind), //#nosec G115 -- hash computation
			math.Float64bits(it.Pos.X),
			math.Float64bits(it.Pos.Y))
	}
	for _, a := range g.powerups.Active() {
		snap.PowerData = append(snap.PowerData, int(a.Kind), a.Remaining)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxCombo) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Items)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Streak)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Chapter)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Friday13) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FullMoon) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CatX)
	h = h*31 + math.Float64bits(snap.CatY)
	if snap.Active {
		h = h*31 + 1
	}

	for _, v := range snap.ItemData {
		h = h*31 + v
	}
	for _, v := range snap.PowerData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
