package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultGameConfig() {
		t.Errorf("embedded defaults diverge from DefaultGameConfig:\n yaml: %+v\n code: %+v", fromYAML, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("scoring:\n  combo_window: 90\nspawning:\n  min_rate: 8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scoring.ComboWindow != 90 {
		t.Errorf("ComboWindow = %d, expected 90", cfg.Scoring.ComboWindow)
	}
	if cfg.Spawning.MinRate != 8 {
		t.Errorf("MinRate = %d, expected 8", cfg.Spawning.MinRate)
	}
	// Untouched sections keep their defaults.
	if cfg.PowerUps.Pounce.Cooldown != 600 {
		t.Errorf("Pounce cooldown = %d, expected 600", cfg.PowerUps.Pounce.Cooldown)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scoring: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.PowerUps.Pounce.Cooldown = -10
	cfg.PowerUps.NightVision.Duration = -5
	cfg.Spawning.GoodChance = 1.7
	cfg.Spawning.MinRate = 0
	cfg.Scoring.MaxLives = 20
	cfg.Scoring.StartLives = 15
	cfg.Events.TriggerChance = -1
	cfg.Modes.ChallengeLives = 0

	cfg.Normalize()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"negative cooldown", float64(cfg.PowerUps.Pounce.Cooldown), 0},
		{"negative duration", float64(cfg.PowerUps.NightVision.Duration), 1},
		{"chance above one", cfg.Spawning.GoodChance, 1},
		{"zero rate", float64(cfg.Spawning.MinRate), 1},
		{"max lives", float64(cfg.Scoring.MaxLives), 9},
		{"start lives", float64(cfg.Scoring.StartLives), 9},
		{"trigger chance", cfg.Events.TriggerChance, 0},
		{"challenge lives", float64(cfg.Modes.ChallengeLives), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, expected %v", tc.got, tc.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      DifficultyPreset
		wantErr   bool
		fallScale float64
	}{
		{"empty means normal", "", DifficultyNormal, false, 1},
		{"easy", "easy", DifficultyEasy, false, 0.8},
		{"hard", "hard", DifficultyHard, false, 1.25},
		{"unknown", "nightmare", "", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePreset(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v", tc.input, err)
			}
			if tc.wantErr {
				return
			}
			if p != tc.want {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, p, tc.want)
			}
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, p)
			if cfg.Spawning.FallSpeedScale != tc.fallScale {
				t.Errorf("FallSpeedScale = %v, expected %v", cfg.Spawning.FallSpeedScale, tc.fallScale)
			}
		})
	}
}
