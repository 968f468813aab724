package core

// ScreenID names one host screen. Exactly one is active at a time.
type ScreenID int

const (
	ScreenNone ScreenID = iota // gameplay, no overlay
	ScreenMain
	ScreenPlay
	ScreenTutorial
	ScreenAchievements
	ScreenStats
	ScreenSettings
	ScreenGameOver
)

var screenNames = [...]string{
	ScreenNone:         "none",
	ScreenMain:         "main",
	ScreenPlay:         "play",
	ScreenTutorial:     "tutorial",
	ScreenAchievements: "achievements",
	ScreenStats:        "stats",
	ScreenSettings:     "settings",
	ScreenGameOver:     "gameOver",
}

// String returns the screen name.
func (s ScreenID) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// Intent is a navigation request raised by the user or the engine.
type Intent int

const (
	IntentOpenPlay Intent = iota
	IntentOpenTutorial
	IntentOpenAchievements
	IntentOpenStats
	IntentOpenSettings
	IntentBack
	IntentStartSession
	IntentSessionEnded
	IntentPlayAgain
)

// Navigator holds the active screen and applies transitions.
type Navigator struct {
	current ScreenID
}

// NewNavigator starts on the main menu.
func NewNavigator() *Navigator {
	return &Navigator{current: ScreenMain}
}

// Current returns the active screen.
func (n *Navigator) Current() ScreenID {
	return n.current
}

// Set forces the active screen. Used when the engine presents a screen itself.
func (n *Navigator) Set(id ScreenID) {
	n.current = id
}

// Apply performs the transition for intent and returns the new screen.
// ok is false when the intent is not valid from the current screen, in
// which case the screen is unchanged.
func (n *Navigator) Apply(intent Intent) (ScreenID, bool) {
	next, ok := Transition(n.current, intent)
	if ok {
		n.current = next
	}
	return n.current, ok
}

// Transition is the screen state machine.
func Transition(from ScreenID, intent Intent) (ScreenID, bool) {
	switch from {
	case ScreenMain:
		switch intent {
		case IntentOpenPlay:
			return ScreenPlay, true
		case IntentOpenTutorial:
			return ScreenTutorial, true
		case IntentOpenAchievements:
			return ScreenAchievements, true
		case IntentOpenStats:
			return ScreenStats, true
		case IntentOpenSettings:
			return ScreenSettings, true
		}
	case ScreenPlay, ScreenTutorial:
		switch intent {
		case IntentStartSession:
			return ScreenNone, true
		case IntentBack:
			return ScreenMain, true
		}
	case ScreenAchievements, ScreenStats, ScreenSettings:
		if intent == IntentBack {
			return ScreenMain, true
		}
	case ScreenNone:
		switch intent {
		case IntentSessionEnded:
			return ScreenGameOver, true
		case IntentBack:
			return ScreenMain, true
		}
	case ScreenGameOver:
		switch intent {
		case IntentPlayAgain, IntentStartSession:
			return ScreenNone, true
		case IntentBack:
			return ScreenMain, true
		}
	}
	return from, false
}
