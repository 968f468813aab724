package shadowpaws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shadow-paws/internal/config"
)

func TestMultiplier(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring

	tests := []struct {
		name  string
		combo int
		mods  Modifiers
		want  float64
	}{
		{"base", 1, Modifiers{}, 1},
		{"combo step", 5, Modifiers{}, 2},
		{"combo twelve", 12, Modifiers{}, 3},
		{"favorable", 1, Modifiers{Favorable: true}, 2},
		{"adverse", 1, Modifiers{Adverse: true}, 1.5},
		{"both", 5, Modifiers{Favorable: true, Adverse: true}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(cfg, 9, 1)
			p.Combo = tt.combo
			assert.InDelta(t, tt.want, p.Multiplier(cfg, tt.mods), 1e-9)
		})
	}
}

func TestComboMultiplierNonDecreasingInStreak(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring
	p := NewProgress(cfg, 9, 1)

	last := 0.0
	for i := 0; i < 40; i++ {
		p.ApplyGood(cfg, KindFish.Spec(), Modifiers{})
		m := p.Multiplier(cfg, Modifiers{})
		require.GreaterOrEqual(t, m, last)
		last = m
	}

	p.ApplyBad(cfg, false)
	assert.Zero(t, p.Combo)
	assert.Zero(t, p.ComboTimer)
}

func TestApplyBadGuarded(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring

	p := NewProgress(cfg, 9, 1)
	p.Combo = 4
	out := p.ApplyBad(cfg, true)
	assert.True(t, out.Guarded)
	assert.Equal(t, 5, p.Score)
	assert.Equal(t, 9, p.Lives)
	assert.Equal(t, 4, p.Combo)

	p.Invincible = 10
	out = p.ApplyBad(cfg, false)
	assert.True(t, out.Guarded)
	assert.Equal(t, 10, p.Score)
}

func TestApplyBadNeverBelowZero(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring
	p := NewProgress(cfg, 1, 1)

	out := p.ApplyBad(cfg, false)
	require.True(t, out.Ended)
	assert.Zero(t, p.Lives)

	out = p.ApplyBad(cfg, false)
	assert.False(t, out.Ended)
	assert.Zero(t, p.Lives)
	assert.Equal(t, 1, p.LivesLost)
}

func TestExtraLifeEveryThirdLevel(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring
	p := NewProgress(cfg, 5, 1)

	var gained int
	for i := 0; i < 36; i++ {
		if p.ApplyGood(cfg, KindFish.Spec(), Modifiers{}).ExtraLife {
			gained++
		}
	}
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 1, gained)
	assert.Equal(t, 6, p.Lives)
	assert.Equal(t, 3, p.PerfectLevels)
}

func TestPerfectLevelRequiresNoDamage(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring
	p := NewProgress(cfg, 9, 1)

	p.ApplyBad(cfg, false)
	for i := 0; i < 12; i++ {
		p.ApplyGood(cfg, KindFish.Spec(), Modifiers{})
	}
	assert.Equal(t, 2, p.Level)
	assert.Zero(t, p.PerfectLevels)
}

func TestPointsAreRounded(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring
	p := NewProgress(cfg, 9, 1)

	out := p.ApplyGood(cfg, KindPaw.Spec(), Modifiers{Adverse: true})
	assert.Equal(t, 23, out.Points)
}

func TestStartLivesCapped(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring
	p := NewProgress(cfg, 20, 0)
	assert.Equal(t, 9, p.Lives)
	assert.InDelta(t, 1, p.SpeedScale, 1e-9)
	assert.False(t, p.AddLife())
}
