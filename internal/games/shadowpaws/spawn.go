package shadowpaws

import (
	"math"

	"github.com/vovakirdan/shadow-paws/internal/core"
)

// spawnRate returns the ticks between regular spawns at the current level.
func (g *Game) spawnRate() int {
	sp := g.cfg.Spawning
	return max(sp.BaseRate-sp.RatePerLevel*g.progress.Level, sp.MinRate, 1)
}

// spawnCadence spawns on every spawnRate-th tick, with deferred extra
// spawns at higher levels.
func (g *Game) spawnCadence() {
	if g.tick%g.spawnRate() != 0 {
		return
	}
	g.spawnItem()

	level := g.progress.Level
	if level > 2 && g.rng.Chance(0.2+0.05*float64(level)) {
		g.sched.After(g.runtime.TicksFor(100), g.deferredSpawn)
	}
	if level > 5 && g.rng.Chance(0.02*float64(level)) {
		g.sched.After(g.runtime.TicksFor(200), g.deferredSpawn)
	}
}

func (g *Game) deferredSpawn() {
	if g.active {
		g.spawnItem()
	}
}

// goodChance returns the probability that the next spawn is a good item.
func (g *Game) goodChance() float64 {
	sp := g.cfg.Spawning
	p := math.Max(sp.MinGoodChance, sp.GoodChance-sp.GoodChancePerLevel*float64(g.progress.Level))
	if g.events.Friday13 {
		p = sp.AdverseGoodChance
	}
	if g.mode == ModeStory {
		p = ChapterAt(g.chapter).weightGoodChance(p)
	}
	return p
}

// pickKind rolls the category of the next item.
func (g *Game) pickKind() ItemKind {
	sp := g.cfg.Spawning
	if !g.rng.Chance(g.goodChance()) {
		return badItems[g.rng.Intn(len(badItems))]
	}

	clover := sp.CloverChance
	if g.progress.Combo > 10 {
		clover += sp.CloverComboBonus
	}
	switch {
	case g.rng.Chance(clover):
		return KindClover
	case g.rng.Chance(sp.PowerUpChance) && g.progress.Level > sp.PowerUpMinLevel:
		return powerUpItems[g.rng.Intn(len(powerUpItems))]
	default:
		return commonItems[g.rng.Intn(len(commonItems))]
	}
}

func (g *Game) spawnItem() {
	sp := g.cfg.Spawning
	kind := g.pickKind()

	base := sp.BaseFallSpeed + sp.FallSpeedPerLevel*float64(g.progress.Level)
	g.ents.Items = append(g.ents.Items, Item{
		Kind:        kind,
		Pos:         core.Vec{X: g.rng.Float64()*(g.cfg.World.Width-40) + 20, Y: -30},
		Speed:       (base + g.rng.Float64()*sp.FallSpeedJitter) * sp.FallSpeedScale,
		Wobble:      g.rng.Float64() * 2 * math.Pi,
		WobbleSpeed: g.rng.Float64()*0.1 + 0.05,
	})
}

// bonusStar builds the i-th star of a combo milestone bonus.
func (g *Game) bonusStar(i int) Item {
	return Item{
		Kind:        KindStar,
		Pos:         core.Vec{X: g.rng.Float64()*(g.cfg.World.Width-40) + 20, Y: -30 - float64(i)*40},
		Speed:       4 + float64(g.progress.Level)*0.3,
		Wobble:      g.rng.Float64() * 2 * math.Pi,
		WobbleSpeed: 0.1,
	}
}
