package shadowpaws

import (
	"math"

	"github.com/vovakirdan/shadow-paws/internal/config"
)

// Progress is the per-session scoring and progression state.
type Progress struct {
	Score          int
	Lives          int
	MaxLives       int
	Combo          int
	ComboTimer     int
	MaxCombo       int
	Level          int
	ItemsCollected int
	Streak         int
	LivesLost      int // lives taken by bad items this session

	// SpeedScale is the mode's base speed factor; SpeedMultiplier derives
	// from it and the level.
	SpeedScale      float64
	SpeedMultiplier float64

	Invincible int // ticks of invincibility left

	PerfectLevels int  // levels cleared without damage
	hurtThisLevel bool // damage taken since the last level-up
}

// Modifiers are the global multipliers active at collision time.
type Modifiers struct {
	Favorable bool // Full Moon doubles points
	Adverse   bool // Friday the 13th adds 50%
}

// GoodOutcome reports what a good collision changed.
type GoodOutcome struct {
	Points    int
	LevelUp   bool
	ExtraLife bool
}

// BadOutcome reports what a bad collision changed.
type BadOutcome struct {
	Guarded bool // no penalty, risk bonus granted instead
	Bonus   int
	Ended   bool // lives reached zero on this collision
}

// NewProgress returns the starting progression for a mode.
func NewProgress(cfg config.ScoringConfig, lives int, speedScale float64) Progress {
	if speedScale <= 0 {
		speedScale = 1
	}
	if lives > cfg.MaxLives {
		lives = cfg.MaxLives
	}
	return Progress{
		Lives:           lives,
		MaxLives:        cfg.MaxLives,
		Level:           1,
		SpeedScale:      speedScale,
		SpeedMultiplier: speedScale,
	}
}

// Multiplier returns the score multiplier for the current combo.
func (p *Progress) Multiplier(cfg config.ScoringConfig, mods Modifiers) float64 {
	m := float64(1 + p.Combo/cfg.ComboStep)
	if mods.Favorable {
		m *= 2
	}
	if mods.Adverse {
		m *= 1.5
	}
	return m
}

// ApplyGood applies a good collision. Combo is incremented before the
// multiplier is computed.
func (p *Progress) ApplyGood(cfg config.ScoringConfig, spec ItemSpec, mods Modifiers) GoodOutcome {
	var out GoodOutcome

	p.Combo++
	if p.Combo > p.MaxCombo {
		p.MaxCombo = p.Combo
	}
	p.ComboTimer = cfg.ComboWindow

	out.Points = int(math.Round(float64(spec.Points) * p.Multiplier(cfg, mods)))
	p.Score += out.Points

	p.ItemsCollected++
	p.Streak++

	if p.ItemsCollected%cfg.ItemsPerLevel == 0 {
		p.Level++
		p.SpeedMultiplier = p.SpeedScale * (1 + cfg.LevelSpeedStep*float64(p.Level-1))
		out.LevelUp = true
		if !p.hurtThisLevel {
			p.PerfectLevels++
		}
		p.hurtThisLevel = false
		if p.Level%cfg.LifeEveryLevels == 0 && p.Lives < p.MaxLives {
			p.Lives++
			out.ExtraLife = true
		}
	}

	return out
}

// ApplySpecial grants the special item bonus.
func (p *Progress) ApplySpecial(cfg config.ScoringConfig) {
	p.Invincible = cfg.InvincibleTicks
	p.Combo += cfg.SpecialCombo
	if p.Combo > p.MaxCombo {
		p.MaxCombo = p.Combo
	}
}

// ApplyBad applies a bad collision. pounce reports whether the pass-through
// power-up is active.
func (p *Progress) ApplyBad(cfg config.ScoringConfig, pounce bool) BadOutcome {
	if pounce || p.Invincible > 0 {
		p.Score += cfg.RiskBonus
		return BadOutcome{Guarded: true, Bonus: cfg.RiskBonus}
	}
	if p.Lives <= 0 {
		return BadOutcome{}
	}

	p.Lives--
	p.LivesLost++
	p.Combo = 0
	p.ComboTimer = 0
	p.Streak = 0
	p.hurtThisLevel = true

	return BadOutcome{Ended: p.Lives == 0}
}

// AddLife grants one life up to the cap. Returns false at the cap.
func (p *Progress) AddLife() bool {
	if p.Lives >= p.MaxLives {
		return false
	}
	p.Lives++
	return true
}

// Tick advances the invincibility and combo timers.
// An idle combo resets when its timer runs out.
func (p *Progress) Tick() {
	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.ComboTimer > 0 {
		p.ComboTimer--
		if p.ComboTimer == 0 {
			p.Combo = 0
		}
	}
}
