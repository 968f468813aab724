package shadowpaws

import (
	"encoding/json"
	"sort"
)

// AchievementKey names an unlockable achievement.
type AchievementKey string

const (
	AchFirstSteps    AchievementKey = "firstSteps"
	AchCombo5        AchievementKey = "combo5"
	AchCombo25       AchievementKey = "combo25"
	AchCombo50       AchievementKey = "combo50"
	AchLevel10       AchievementKey = "level10"
	AchSurvivor      AchievementKey = "survivor"
	AchCollector     AchievementKey = "collector"
	AchVeteran       AchievementKey = "veteran"
	AchStreaker      AchievementKey = "streaker"
	AchPerfectionist AchievementKey = "perfectionist"
)

// AchievementStats is the cumulative state achievements are judged on.
type AchievementStats struct {
	ItemsCollected int
	MaxCombo       int
	Level          int
	Lives          int
	TotalItems     int
	TotalGames     int
	LongestStreak  int
	PerfectLevels  int
}

// Achievement describes one catalog entry.
type Achievement struct {
	Key         AchievementKey
	Name        string
	Description string
	Icon        string
	unlocked    func(s AchievementStats) bool
}

// Achievements is the fixed catalog in display order.
var Achievements = []Achievement{
	{AchFirstSteps, "First Steps", "Collect your first item", "🐾",
		func(s AchievementStats) bool { return s.ItemsCollected >= 1 }},
	{AchCombo5, "Combo Cat", "Achieve a 5x combo", "🔥",
		func(s AchievementStats) bool { return s.MaxCombo >= 5 }},
	{AchCombo25, "Combo Master", "Achieve a 25x combo", "⚡",
		func(s AchievementStats) bool { return s.MaxCombo >= 25 }},
	{AchCombo50, "Combo Legend", "Achieve a 50x combo", "👑",
		func(s AchievementStats) bool { return s.MaxCombo >= 50 }},
	{AchLevel10, "Persistent Cat", "Reach level 10", "🏆",
		func(s AchievementStats) bool { return s.Level >= 10 }},
	{AchSurvivor, "Nine Lives", "Survive with only 1 life", "💚",
		func(s AchievementStats) bool { return s.Lives == 1 && s.Level >= 5 }},
	{AchCollector, "Item Hoarder", "Collect 1000 total items", "💎",
		func(s AchievementStats) bool { return s.TotalItems >= 1000 }},
	{AchVeteran, "Veteran Player", "Play 100 games", "🎖",
		func(s AchievementStats) bool { return s.TotalGames >= 100 }},
	{AchStreaker, "Lucky Cat", "Collect 10 good items in a row", "🍀",
		func(s AchievementStats) bool { return s.LongestStreak >= 10 }},
	{AchPerfectionist, "Perfectionist", "Complete a level without taking damage", "✨",
		func(s AchievementStats) bool { return s.PerfectLevels >= 1 }},
}

// AchievementByKey looks up a catalog entry.
func AchievementByKey(k AchievementKey) (Achievement, bool) {
	for _, a := range Achievements {
		if a.Key == k {
			return a, true
		}
	}
	return Achievement{}, false
}

// AchievementSet is an append-only set of unlocked keys.
type AchievementSet struct {
	unlocked map[AchievementKey]bool
}

// NewAchievementSet returns an empty set.
func NewAchievementSet() *AchievementSet {
	return &AchievementSet{unlocked: make(map[AchievementKey]bool)}
}

// ParseAchievementSet decodes the persisted JSON object. Malformed input
// yields an empty set.
func ParseAchievementSet(raw string) *AchievementSet {
	set := NewAchievementSet()
	if raw == "" {
		return set
	}
	var m map[string]bool
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return set
	}
	for k, v := range m {
		if v {
			set.unlocked[AchievementKey(k)] = true
		}
	}
	return set
}

// Has reports whether k is unlocked.
func (s *AchievementSet) Has(k AchievementKey) bool {
	return s.unlocked[k]
}

// Unlock marks k as unlocked and reports whether it was new.
func (s *AchievementSet) Unlock(k AchievementKey) bool {
	if s.unlocked[k] {
		return false
	}
	s.unlocked[k] = true
	return true
}

// Len returns the number of unlocked keys.
func (s *AchievementSet) Len() int {
	return len(s.unlocked)
}

// Keys returns the unlocked keys sorted by name.
func (s *AchievementSet) Keys() []AchievementKey {
	keys := make([]AchievementKey, 0, len(s.unlocked))
	for k := range s.unlocked {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Encode serializes the set as a JSON object of key to true.
func (s *AchievementSet) Encode() string {
	m := make(map[string]bool, len(s.unlocked))
	for k := range s.unlocked {
		m[string(k)] = true
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Evaluate returns the catalog keys whose predicate holds for stats and
// that are not yet in set. It does not modify set.
func Evaluate(stats AchievementStats, set *AchievementSet) []AchievementKey {
	var fresh []AchievementKey
	for _, a := range Achievements {
		if set.Has(a.Key) {
			continue
		}
		if a.unlocked(stats) {
			fresh = append(fresh, a.Key)
		}
	}
	return fresh
}
