package shadowpaws

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/shadow-paws/internal/core"
)

// Profile keys, stored under the storage prefix.
const (
	KeyHigh          = "high"
	KeyAchievements  = "achievements"
	KeyTotalItems    = "totalItems"
	KeyTotalGames    = "totalGames"
	KeyTotalTime     = "totalTime"
	KeyBestCombo     = "bestCombo"
	KeyLongestStreak = "longestStreak"
	KeyAudio         = "audio"
)

// Profile is the lifetime progression of one player.
type Profile struct {
	kv core.KV

	HighScore     int
	Achievements  *AchievementSet
	TotalItems    int
	TotalGames    int
	TotalTime     int // seconds survived across all sessions
	BestCombo     int
	LongestStreak int
	Audio         bool
}

// LoadProfile reads every key from kv, substituting defaults for absent
// or unparsable values.
func LoadProfile(kv core.KV) *Profile {
	p := &Profile{kv: kv}
	p.HighScore = readInt(kv, KeyHigh)
	p.TotalItems = readInt(kv, KeyTotalItems)
	p.TotalGames = readInt(kv, KeyTotalGames)
	p.TotalTime = readInt(kv, KeyTotalTime)
	p.BestCombo = readInt(kv, KeyBestCombo)
	p.LongestStreak = readInt(kv, KeyLongestStreak)

	raw, _ := kv.Get(KeyAchievements)
	p.Achievements = ParseAchievementSet(raw)

	audio, ok := kv.Get(KeyAudio)
	p.Audio = !ok || audio != "false"
	return p
}

func readInt(kv core.KV, key string) int {
	v, ok := kv.Get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (p *Profile) writeInt(key string, v int) {
	p.kv.Set(key, strconv.Itoa(v))
}

// Unlock adds k to the achievement set and persists it immediately.
func (p *Profile) Unlock(k AchievementKey) bool {
	if !p.Achievements.Unlock(k) {
		return false
	}
	p.kv.Set(KeyAchievements, p.Achievements.Encode())
	return true
}

// AddItem bumps the lifetime item counter.
func (p *Profile) AddItem() {
	p.TotalItems++
	p.writeInt(KeyTotalItems, p.TotalItems)
}

// ObserveStreak records a new longest streak.
func (p *Profile) ObserveStreak(streak int) {
	if streak <= p.LongestStreak {
		return
	}
	p.LongestStreak = streak
	p.writeInt(KeyLongestStreak, p.LongestStreak)
}

// RecordSession folds a finished session into the lifetime totals.
// It reports whether score set a new high score.
func (p *Profile) RecordSession(score, maxCombo, seconds int) bool {
	p.TotalGames++
	p.writeInt(KeyTotalGames, p.TotalGames)

	if seconds > 0 {
		p.TotalTime += seconds
		p.writeInt(KeyTotalTime, p.TotalTime)
	}
	if maxCombo > p.BestCombo {
		p.BestCombo = maxCombo
		p.writeInt(KeyBestCombo, p.BestCombo)
	}
	if score > p.HighScore {
		p.HighScore = score
		p.writeInt(KeyHigh, p.HighScore)
		return true
	}
	return false
}

// SetAudio stores the audio preference.
func (p *Profile) SetAudio(on bool) {
	p.Audio = on
	p.kv.Set(KeyAudio, strconv.FormatBool(on))
}

// Reset wipes every statistic back to its default.
func (p *Profile) Reset() {
	p.HighScore = 0
	p.TotalItems = 0
	p.TotalGames = 0
	p.TotalTime = 0
	p.BestCombo = 0
	p.LongestStreak = 0
	p.Achievements = NewAchievementSet()
	p.Audio = true

	for _, k := range []string{KeyHigh, KeyTotalItems, KeyTotalGames, KeyTotalTime, KeyBestCombo, KeyLongestStreak} {
		p.writeInt(k, 0)
	}
	p.kv.Set(KeyAchievements, p.Achievements.Encode())
	p.kv.Set(KeyAudio, "true")
}

// StatLine is one labelled entry of the statistics screen.
type StatLine struct {
	Label string
	Value string
}

// Stats returns the statistics screen rows.
func (p *Profile) Stats() []StatLine {
	return []StatLine{
		{"Games Played", strconv.Itoa(p.TotalGames)},
		{"High Score", strconv.Itoa(p.HighScore)},
		{"Total Items", strconv.Itoa(p.TotalItems)},
		{"Best Combo", strconv.Itoa(p.BestCombo)},
		{"Longest Streak", strconv.Itoa(p.LongestStreak)},
		{"Survival Time", FormatDuration(p.TotalTime)},
		{"Achievements", fmt.Sprintf("%d/%d", p.Achievements.Len(), len(Achievements))},
	}
}

// FormatDuration renders seconds as "Xm Ys".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
