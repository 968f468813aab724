package shadowpaws

import (
	"fmt"
	"time"

	"github.com/vovakirdan/shadow-paws/internal/config"
)

// Mode identifies a game variant.
type Mode int

const (
	ModeEndless Mode = iota
	ModeStory
	ModeChallenge
	ModeTutorial
)

// ModeSpec describes a game variant.
type ModeSpec struct {
	ID          string
	Title       string
	Description string
}

var modeCatalog = map[Mode]ModeSpec{
	ModeEndless: {
		ID:          "endless",
		Title:       "Endless Mode",
		Description: "Classic arcade survival - see how long you can last!",
	},
	ModeStory: {
		ID:          "story",
		Title:       "Story Mode",
		Description: "Progress through themed chapters with unique challenges",
	},
	ModeChallenge: {
		ID:          "challenge",
		Title:       "Challenge Mode",
		Description: "Daily challenges with special rules and rewards",
	},
	ModeTutorial: {
		ID:          "tutorial",
		Title:       "Interactive Tutorial",
		Description: "Learn the game with guided practice at half speed",
	},
}

// Spec returns the descriptor of m.
func (m Mode) Spec() ModeSpec {
	return modeCatalog[m]
}

// startLives returns the lives a session of m begins with.
func (m Mode) startLives(cfg config.GameConfig) int {
	if m == ModeChallenge {
		return cfg.Modes.ChallengeLives
	}
	return cfg.Scoring.StartLives
}

// speedScale returns the mode's base speed multiplier.
func (m Mode) speedScale(cfg config.GameConfig) float64 {
	if m == ModeTutorial {
		return cfg.Modes.TutorialSpeedScale
	}
	return 1
}

// Chapter is one themed story chapter.
type Chapter struct {
	Theme    string
	BadLuck  float64 // weight applied to bad spawns
	GoodLuck float64 // weight applied to good spawns
	Event    EventKind
}

// Chapters is the story sequence; it cycles after the last entry.
var Chapters = []Chapter{
	{Theme: "Midnight Walk", BadLuck: 1, GoodLuck: 1},
	{Theme: "Friday 13th", BadLuck: 2, GoodLuck: 0.5, Event: EventFriday13},
	{Theme: "Full Moon", BadLuck: 0.5, GoodLuck: 2, Event: EventFullMoon},
	{Theme: "Black Cat Crossing", BadLuck: 1.5, GoodLuck: 1.5},
	{Theme: "Superstition City", BadLuck: 2, GoodLuck: 1},
}

// ChapterAt returns the chapter for a zero-based index.
func ChapterAt(i int) Chapter {
	if i < 0 {
		i = 0
	}
	return Chapters[i%len(Chapters)]
}

// weightGoodChance re-weights a good-spawn probability by the chapter luck.
func (c Chapter) weightGoodChance(p float64) float64 {
	good := p * c.GoodLuck
	bad := (1 - p) * c.BadLuck
	if good+bad <= 0 {
		return p
	}
	return good / (good + bad)
}

// ChallengeRule is the success condition of a daily challenge.
type ChallengeRule int

const (
	RuleNoLivesLost ChallengeRule = iota
	RuleComboTarget
	RuleTimeLimit
	RuleItemTarget
	RuleAvoidBadLuck
)

// Challenge is one entry of the daily challenge catalog.
type Challenge struct {
	Name        string
	Description string
	Rule        ChallengeRule
	Target      int // level, combo, items or seconds depending on Rule
	Reward      int
}

// DailyChallenges is indexed by day of month modulo its length.
var DailyChallenges = []Challenge{
	{Name: "No Lives Lost", Description: "Reach level 5 without losing a life", Rule: RuleNoLivesLost, Target: 5, Reward: 500},
	{Name: "Combo Master", Description: "Achieve a 20x combo", Rule: RuleComboTarget, Target: 20, Reward: 300},
	{Name: "Speed Run", Description: "Survive for 60 seconds", Rule: RuleTimeLimit, Target: 60, Reward: 400},
	{Name: "Item Collector", Description: "Collect 50 items", Rule: RuleItemTarget, Target: 50, Reward: 350},
	{Name: "Mirror Madness", Description: "Avoid all bad luck items for 30 seconds", Rule: RuleAvoidBadLuck, Target: 30, Reward: 450},
}

// ChallengeFor selects the daily challenge for a calendar day.
func ChallengeFor(t time.Time) Challenge {
	return DailyChallenges[t.Day()%len(DailyChallenges)]
}

// ChallengeProgress is the session data a rule is checked against.
type ChallengeProgress struct {
	Level       int
	LivesLost   int
	MaxCombo    int
	Items       int
	Elapsed     int // ticks since session start
	SinceBadHit int // ticks since the last bad collision, or since start
	TickRate    int
}

// ChallengeState is the outcome so far.
type ChallengeState int

const (
	ChallengePending ChallengeState = iota
	ChallengeComplete
	ChallengeFailed
)

// ChallengeTracker validates the daily rule and pays the reward once.
type ChallengeTracker struct {
	Challenge Challenge
	State     ChallengeState
}

// NewChallengeTracker starts tracking c.
func NewChallengeTracker(c Challenge) *ChallengeTracker {
	return &ChallengeTracker{Challenge: c}
}

// Validate checks the rule. It returns the reward to add to the score,
// which is non-zero at most once per tracker.
func (ct *ChallengeTracker) Validate(p ChallengeProgress) int {
	if ct.State != ChallengePending {
		return 0
	}
	c := ct.Challenge
	seconds := func(ticks int) int {
		rate := p.TickRate
		if rate <= 0 {
			rate = 60
		}
		return ticks / rate
	}

	var done bool
	switch c.Rule {
	case RuleNoLivesLost:
		if p.LivesLost > 0 {
			ct.State = ChallengeFailed
			return 0
		}
		done = p.Level >= c.Target
	case RuleComboTarget:
		done = p.MaxCombo >= c.Target
	case RuleItemTarget:
		done = p.Items >= c.Target
	case RuleTimeLimit:
		done = seconds(p.Elapsed) >= c.Target
	case RuleAvoidBadLuck:
		done = seconds(p.SinceBadHit) >= c.Target
	}

	if !done {
		return 0
	}
	ct.State = ChallengeComplete
	return c.Reward
}

// timed reports whether the rule needs a deferred time check.
func (ct *ChallengeTracker) timed() bool {
	return ct.Challenge.Rule == RuleTimeLimit || ct.Challenge.Rule == RuleAvoidBadLuck
}

// Status returns the challenge part of the status line.
func (ct *ChallengeTracker) Status() string {
	switch ct.State {
	case ChallengeComplete:
		return fmt.Sprintf("Challenge Complete! +%d points", ct.Challenge.Reward)
	case ChallengeFailed:
		return "Challenge Failed: Lives Lost"
	default:
		return "Challenge: " + ct.Challenge.Name
	}
}
