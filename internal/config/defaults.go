package config

import (
	_ "embed"
)

//go:embed defaults/shadowpaws.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  400,
			Height: 600,
			Stars:  50,
		},
		Sprite: SpriteConfig{
			StartX:         200,
			StartY:         500,
			Size:           30,
			Speed:          8,
			Friction:       0.85,
			MinPush:        0.3,
			Follow:         0.25,
			DashScale:      1.8,
			PawPrintChance: 0.3,
		},
		Scoring: ScoringConfig{
			StartLives:      9,
			MaxLives:        9,
			ComboWindow:     120,
			ComboStep:       5,
			ItemsPerLevel:   12,
			LifeEveryLevels: 3,
			LevelSpeedStep:  0.1,
			RiskBonus:       5,
			SpecialCombo:    5,
			InvincibleTicks: 300,
			BonusMilestone:  10,
		},
		Spawning: SpawningConfig{
			BaseRate:           25,
			RatePerLevel:       2,
			MinRate:            6,
			GoodChance:         0.7,
			GoodChancePerLevel: 0.02,
			MinGoodChance:      0.3,
			AdverseGoodChance:  0.2,
			CloverChance:       0.04,
			CloverComboBonus:   0.02,
			PowerUpChance:      0.08,
			PowerUpMinLevel:    2,
			BaseFallSpeed:      2.5,
			FallSpeedPerLevel:  0.25,
			FallSpeedJitter:    1.5,
			FallSpeedScale:     1,
		},
		PowerUps: PowerUpsConfig{
			Pounce:      PowerUpTiming{Duration: 180, Cooldown: 600},
			NightVision: PowerUpTiming{Duration: 300, Cooldown: 900},
			NineLives:   PowerUpTiming{Duration: 1, Cooldown: 1200},
		},
		Events: EventsConfig{
			TriggerChance:   0.0005,
			AdverseChance:   0.3,
			FavorableChance: 0.2,
			AdverseTicks:    600,
			FavorableTicks:  900,
		},
		Modes: ModesConfig{
			ChallengeLives:     3,
			TutorialSpeedScale: 0.5,
			ChapterLevels:      3,
			ChapterBonus:       200,
			ThemeEventTicks:    1800,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
