// Package config provides YAML-based game configuration loading and
// difficulty presets for Shadow Paws.
package config

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	World    WorldConfig    `yaml:"world"`
	Sprite   SpriteConfig   `yaml:"sprite"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Spawning SpawningConfig `yaml:"spawning"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Events   EventsConfig   `yaml:"events"`
	Modes    ModesConfig    `yaml:"modes"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Stars  int     `yaml:"stars"` // background starfield size
}

// SpriteConfig defines the cat's size and movement.
type SpriteConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"`
	Friction       float64 `yaml:"friction"`   // velocity kept per tick in key mode
	MinPush        float64 `yaml:"min_push"`   // fraction of move speed a held key enforces
	Follow         float64 `yaml:"follow"`     // pointer approach factor per tick
	DashScale      float64 `yaml:"dash_scale"` // speed factor while pounce is active
	PawPrintChance float64 `yaml:"paw_print_chance"`
}

// ScoringConfig defines combo, level and life rules.
type ScoringConfig struct {
	StartLives      int     `yaml:"start_lives"`
	MaxLives        int     `yaml:"max_lives"`
	ComboWindow     int     `yaml:"combo_window"` // ticks before an idle combo resets
	ComboStep       int     `yaml:"combo_step"`   // combo needed per extra multiplier
	ItemsPerLevel   int     `yaml:"items_per_level"`
	LifeEveryLevels int     `yaml:"life_every_levels"`
	LevelSpeedStep  float64 `yaml:"level_speed_step"`
	RiskBonus       int     `yaml:"risk_bonus"` // points for touching a bad item while protected
	SpecialCombo    int     `yaml:"special_combo"`
	InvincibleTicks int     `yaml:"invincible_ticks"`
	BonusMilestone  int     `yaml:"bonus_milestone"` // combo multiple that drops bonus stars
}

// SpawningConfig defines item spawn cadence and odds.
type SpawningConfig struct {
	BaseRate           int     `yaml:"base_rate"`
	RatePerLevel       int     `yaml:"rate_per_level"`
	MinRate            int     `yaml:"min_rate"`
	GoodChance         float64 `yaml:"good_chance"`
	GoodChancePerLevel float64 `yaml:"good_chance_per_level"`
	MinGoodChance      float64 `yaml:"min_good_chance"`
	AdverseGoodChance  float64 `yaml:"adverse_good_chance"`
	CloverChance       float64 `yaml:"clover_chance"`
	CloverComboBonus   float64 `yaml:"clover_combo_bonus"`
	PowerUpChance      float64 `yaml:"powerup_chance"`
	PowerUpMinLevel    int     `yaml:"powerup_min_level"`
	BaseFallSpeed      float64 `yaml:"base_fall_speed"`
	FallSpeedPerLevel  float64 `yaml:"fall_speed_per_level"`
	FallSpeedJitter    float64 `yaml:"fall_speed_jitter"`
	FallSpeedScale     float64 `yaml:"fall_speed_scale"`
}

// PowerUpTiming is the duration and cooldown of one power-up, in ticks.
type PowerUpTiming struct {
	Duration int `yaml:"duration"`
	Cooldown int `yaml:"cooldown"`
}

// PowerUpsConfig holds timings for every power-up.
type PowerUpsConfig struct {
	Pounce      PowerUpTiming `yaml:"pounce"`
	NightVision PowerUpTiming `yaml:"night_vision"`
	NineLives   PowerUpTiming `yaml:"nine_lives"`
}

// EventsConfig defines the random special events.
type EventsConfig struct {
	TriggerChance   float64 `yaml:"trigger_chance"`   // per tick
	AdverseChance   float64 `yaml:"adverse_chance"`   // share of triggers that start Friday 13th
	FavorableChance float64 `yaml:"favorable_chance"` // share of triggers that start Full Moon
	AdverseTicks    int     `yaml:"adverse_ticks"`
	FavorableTicks  int     `yaml:"favorable_ticks"`
}

// ModesConfig holds mode-specific parameters.
type ModesConfig struct {
	ChallengeLives     int     `yaml:"challenge_lives"`
	TutorialSpeedScale float64 `yaml:"tutorial_speed_scale"`
	ChapterLevels      int     `yaml:"chapter_levels"`
	ChapterBonus       int     `yaml:"chapter_bonus"`
	ThemeEventTicks    int     `yaml:"theme_event_ticks"`
}

// Normalize clamps out-of-range values instead of rejecting them.
func (c *GameConfig) Normalize() {
	d := DefaultGameConfig()

	if c.World.Width <= 0 {
		c.World.Width = d.World.Width
	}
	if c.World.Height <= 0 {
		c.World.Height = d.World.Height
	}
	c.World.Stars = clampI(c.World.Stars, 0, 500)

	if c.Sprite.Size <= 0 {
		c.Sprite.Size = d.Sprite.Size
	}
	if c.Sprite.Speed <= 0 {
		c.Sprite.Speed = d.Sprite.Speed
	}
	c.Sprite.StartX = clampF(c.Sprite.StartX, c.Sprite.Size, c.World.Width-c.Sprite.Size)
	c.Sprite.StartY = clampF(c.Sprite.StartY, c.Sprite.Size, c.World.Height-c.Sprite.Size)
	c.Sprite.Friction = clampF(c.Sprite.Friction, 0, 1)
	c.Sprite.MinPush = clampF(c.Sprite.MinPush, 0, 1)
	c.Sprite.Follow = clampF(c.Sprite.Follow, 0.01, 1)
	if c.Sprite.DashScale < 1 {
		c.Sprite.DashScale = 1
	}
	c.Sprite.PawPrintChance = clampF(c.Sprite.PawPrintChance, 0, 1)

	c.Scoring.MaxLives = clampI(c.Scoring.MaxLives, 1, 9)
	c.Scoring.StartLives = clampI(c.Scoring.StartLives, 1, c.Scoring.MaxLives)
	c.Scoring.ComboWindow = clampI(c.Scoring.ComboWindow, 1, 1<<20)
	c.Scoring.ComboStep = clampI(c.Scoring.ComboStep, 1, 1<<20)
	c.Scoring.ItemsPerLevel = clampI(c.Scoring.ItemsPerLevel, 1, 1<<20)
	c.Scoring.LifeEveryLevels = clampI(c.Scoring.LifeEveryLevels, 1, 1<<20)
	c.Scoring.LevelSpeedStep = clampF(c.Scoring.LevelSpeedStep, 0, 10)
	c.Scoring.RiskBonus = clampI(c.Scoring.RiskBonus, 0, 1<<20)
	c.Scoring.SpecialCombo = clampI(c.Scoring.SpecialCombo, 0, 1<<20)
	c.Scoring.InvincibleTicks = clampI(c.Scoring.InvincibleTicks, 0, 1<<20)
	c.Scoring.BonusMilestone = clampI(c.Scoring.BonusMilestone, 1, 1<<20)

	c.Spawning.MinRate = clampI(c.Spawning.MinRate, 1, 1<<20)
	c.Spawning.BaseRate = clampI(c.Spawning.BaseRate, c.Spawning.MinRate, 1<<20)
	c.Spawning.RatePerLevel = clampI(c.Spawning.RatePerLevel, 0, 1<<20)
	c.Spawning.GoodChance = clampF(c.Spawning.GoodChance, 0, 1)
	c.Spawning.GoodChancePerLevel = clampF(c.Spawning.GoodChancePerLevel, 0, 1)
	c.Spawning.MinGoodChance = clampF(c.Spawning.MinGoodChance, 0, 1)
	c.Spawning.AdverseGoodChance = clampF(c.Spawning.AdverseGoodChance, 0, 1)
	c.Spawning.CloverChance = clampF(c.Spawning.CloverChance, 0, 1)
	c.Spawning.CloverComboBonus = clampF(c.Spawning.CloverComboBonus, 0, 1)
	c.Spawning.PowerUpChance = clampF(c.Spawning.PowerUpChance, 0, 1)
	c.Spawning.PowerUpMinLevel = clampI(c.Spawning.PowerUpMinLevel, 0, 1<<20)
	if c.Spawning.BaseFallSpeed <= 0 {
		c.Spawning.BaseFallSpeed = d.Spawning.BaseFallSpeed
	}
	c.Spawning.FallSpeedPerLevel = clampF(c.Spawning.FallSpeedPerLevel, 0, 100)
	c.Spawning.FallSpeedJitter = clampF(c.Spawning.FallSpeedJitter, 0, 100)
	if c.Spawning.FallSpeedScale <= 0 {
		c.Spawning.FallSpeedScale = 1
	}

	for _, t := range []*PowerUpTiming{&c.PowerUps.Pounce, &c.PowerUps.NightVision, &c.PowerUps.NineLives} {
		t.Duration = clampI(t.Duration, 1, 1<<20)
		t.Cooldown = clampI(t.Cooldown, 0, 1<<20)
	}

	c.Events.TriggerChance = clampF(c.Events.TriggerChance, 0, 1)
	c.Events.AdverseChance = clampF(c.Events.AdverseChance, 0, 1)
	c.Events.FavorableChance = clampF(c.Events.FavorableChance, 0, 1-c.Events.AdverseChance)
	c.Events.AdverseTicks = clampI(c.Events.AdverseTicks, 0, 1<<20)
	c.Events.FavorableTicks = clampI(c.Events.FavorableTicks, 0, 1<<20)

	c.Modes.ChallengeLives = clampI(c.Modes.ChallengeLives, 1, c.Scoring.MaxLives)
	c.Modes.TutorialSpeedScale = clampF(c.Modes.TutorialSpeedScale, 0.1, 1)
	c.Modes.ChapterLevels = clampI(c.Modes.ChapterLevels, 1, 1<<20)
	c.Modes.ChapterBonus = clampI(c.Modes.ChapterBonus, 0, 1<<20)
	c.Modes.ThemeEventTicks = clampI(c.Modes.ThemeEventTicks, 0, 1<<20)
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
