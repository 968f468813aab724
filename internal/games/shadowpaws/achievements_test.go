package shadowpaws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shadow-paws/internal/storage"
)

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name  string
		stats AchievementStats
		want  []AchievementKey
	}{
		{"nothing", AchievementStats{Level: 1, Lives: 9}, nil},
		{"first item", AchievementStats{ItemsCollected: 1, Level: 1, Lives: 9}, []AchievementKey{AchFirstSteps}},
		{"combo 25", AchievementStats{MaxCombo: 25, Level: 1, Lives: 9}, []AchievementKey{AchCombo5, AchCombo25}},
		{"survivor", AchievementStats{Lives: 1, Level: 5}, []AchievementKey{AchSurvivor}},
		{"survivor too early", AchievementStats{Lives: 1, Level: 4}, nil},
		{"lifetime", AchievementStats{Level: 1, Lives: 9, TotalItems: 1000, TotalGames: 100, LongestStreak: 10},
			[]AchievementKey{AchCollector, AchVeteran, AchStreaker}},
		{"perfect level", AchievementStats{Level: 2, Lives: 9, PerfectLevels: 1}, []AchievementKey{AchPerfectionist}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.stats, NewAchievementSet()))
		})
	}
}

func TestEvaluateSkipsUnlocked(t *testing.T) {
	set := NewAchievementSet()
	set.Unlock(AchCombo5)

	got := Evaluate(AchievementStats{MaxCombo: 30, Level: 1}, set)
	assert.Equal(t, []AchievementKey{AchCombo25}, got)
}

func TestAchievementsMonotonic(t *testing.T) {
	set := NewAchievementSet()
	require.True(t, set.Unlock(AchLevel10))
	assert.False(t, set.Unlock(AchLevel10))

	for _, s := range []AchievementStats{{}, {Level: 1}, {MaxCombo: 50}} {
		for _, k := range Evaluate(s, set) {
			set.Unlock(k)
		}
		require.True(t, set.Has(AchLevel10))
	}
}

func TestAchievementSetRoundTrip(t *testing.T) {
	set := NewAchievementSet()
	set.Unlock(AchCombo5)
	set.Unlock(AchFirstSteps)

	parsed := ParseAchievementSet(set.Encode())
	assert.Equal(t, []AchievementKey{AchCombo5, AchFirstSteps}, parsed.Keys())
}

func TestParseAchievementSetMalformed(t *testing.T) {
	for _, raw := range []string{"", "{", "not json", "[1,2]", `{"combo5": false}`} {
		assert.Zero(t, ParseAchievementSet(raw).Len(), "input %q", raw)
	}
}

func TestProfileDefaults(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.Set(KeyAchievements, "{broken")
	kv.Set(KeyHigh, "abc")

	p := LoadProfile(kv)
	assert.Zero(t, p.HighScore)
	assert.Zero(t, p.Achievements.Len())
	assert.True(t, p.Audio)
}

func TestProfileSessionAndReset(t *testing.T) {
	kv := storage.NewMemoryKV()
	p := LoadProfile(kv)

	assert.True(t, p.RecordSession(120, 7, 95))
	p.AddItem()
	p.ObserveStreak(4)
	p.ObserveStreak(2)
	p.Unlock(AchCombo5)
	p.SetAudio(false)

	again := LoadProfile(kv)
	assert.Equal(t, 120, again.HighScore)
	assert.Equal(t, 1, again.TotalGames)
	assert.Equal(t, 95, again.TotalTime)
	assert.Equal(t, 7, again.BestCombo)
	assert.Equal(t, 1, again.TotalItems)
	assert.Equal(t, 4, again.LongestStreak)
	assert.True(t, again.Achievements.Has(AchCombo5))
	assert.False(t, again.Audio)

	again.Reset()
	fresh := LoadProfile(kv)
	assert.Zero(t, fresh.HighScore)
	assert.Zero(t, fresh.TotalGames)
	assert.Zero(t, fresh.Achievements.Len())
	assert.True(t, fresh.Audio)
}

func TestProfileStats(t *testing.T) {
	p := LoadProfile(storage.NewMemoryKV())
	p.RecordSession(10, 3, 125)

	stats := p.Stats()
	require.Len(t, stats, 7)
	assert.Equal(t, StatLine{"Survival Time", "2m 5s"}, stats[5])
	assert.Equal(t, StatLine{"Achievements", "0/10"}, stats[6])
}
