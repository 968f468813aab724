package core

// Action represents a semantic game action, abstracted from physical key presses.
// Actions are edge-triggered: they fire once on the frame they were pressed.
type Action int

const (
	ActionNone    Action = iota
	ActionPounce         // 1 / Q - activate pounce
	ActionVision         // 2 / E - activate night vision
	ActionLives          // 3 / R - activate nine lives
	ActionPause          // P - pause/unpause
	ActionRestart        // Enter after game over
	ActionBack           // Esc - leave to menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPounce:
		return "Pounce"
	case ActionVision:
		return "Vision"
	case ActionLives:
		return "Lives"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Logical key names delivered by input sources.
const (
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyUp     = "up"
	KeyDown   = "down"
	KeyA      = "a"
	KeyD      = "d"
	KeyW      = "w"
	KeyS      = "s"
	KeyOne    = "1"
	KeyTwo    = "2"
	KeyThree  = "3"
	KeyQ      = "q"
	KeyE      = "e"
	KeyR      = "r"
	KeyP      = "p"
	KeyEscape = "escape"
	KeyEnter  = "enter"
	KeySpace  = "space"
)

// EventKind classifies an input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointer
)

// InputEvent is one raw event from an input source.
// Pointer coordinates are in the source's own space (ViewW x ViewH);
// the game maps them into world coordinates.
type InputEvent struct {
	Kind  EventKind
	Key   string
	X, Y  float64
	ViewW float64
	ViewH float64
}

// KeyPress builds a key-down event.
func KeyPress(key string) InputEvent {
	return InputEvent{Kind: EventKeyDown, Key: key}
}

// KeyRelease builds a key-up event.
func KeyRelease(key string) InputEvent {
	return InputEvent{Kind: EventKeyUp, Key: key}
}

// Pointer builds a pointer position event.
func Pointer(x, y, viewW, viewH float64) InputEvent {
	return InputEvent{Kind: EventPointer, X: x, Y: y, ViewW: viewW, ViewH: viewH}
}

// InputFrame collects everything that happened between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Events holds raw key and pointer events in arrival order.
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends a raw event.
func (f *InputFrame) Push(ev InputEvent) {
	f.Events = append(f.Events, ev)
}

// Clear resets all actions and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}
