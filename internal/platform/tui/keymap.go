package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shadow-paws/internal/core"
)

// gameKeys maps terminal key names to the logical keys the game reads.
var gameKeys = map[string]string{
	"left":  core.KeyLeft,
	"right": core.KeyRight,
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"a":     core.KeyA,
	"d":     core.KeyD,
	"w":     core.KeyW,
	"s":     core.KeyS,
	"1":     core.KeyOne,
	"2":     core.KeyTwo,
	"3":     core.KeyThree,
	"q":     core.KeyQ,
	"e":     core.KeyE,
	"r":     core.KeyR,
}

// opposite keys release each other so a direction change is immediate.
var opposite = map[string][]string{
	core.KeyLeft:  {core.KeyRight, core.KeyD},
	core.KeyA:     {core.KeyRight, core.KeyD},
	core.KeyRight: {core.KeyLeft, core.KeyA},
	core.KeyD:     {core.KeyLeft, core.KeyA},
	core.KeyUp:    {core.KeyDown, core.KeyS},
	core.KeyW:     {core.KeyDown, core.KeyS},
	core.KeyDown:  {core.KeyUp, core.KeyW},
	core.KeyS:     {core.KeyUp, core.KeyW},
}

// GameKey is the result of mapping one key press during play.
type GameKey int

const (
	GameKeyNone GameKey = iota
	GameKeyHandled
	GameKeyBack
	GameKeyQuit
)

// KeyMapper translates Bubble Tea key messages to game input.
// Terminals report presses only, so a held key is emulated: every press
// (including auto-repeat) keeps the key down for holdTicks ticks and the
// key-up event is synthesized when the hold runs out.
type KeyMapper struct {
	holdTicks int
	held      map[string]int // logical key -> ticks left
}

// NewKeyMapper creates a mapper that holds keys for holdTicks ticks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	return &KeyMapper{
		holdTicks: max(holdTicks, 2),
		held:      make(map[string]int),
	}
}

// MapGameKey feeds a key press into frame.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg, frame *core.InputFrame) GameKey {
	name := msg.String()
	switch name {
	case "ctrl+c":
		return GameKeyQuit
	case "esc", "b":
		return GameKeyBack
	case "p", "P":
		frame.Set(core.ActionPause)
		return GameKeyHandled
	}

	key, ok := gameKeys[strings.ToLower(name)]
	if !ok {
		return GameKeyNone
	}

	for _, o := range opposite[key] {
		if _, down := km.held[o]; down {
			delete(km.held, o)
			frame.Push(core.KeyRelease(o))
		}
	}
	if _, down := km.held[key]; !down {
		frame.Push(core.KeyPress(key))
	}
	km.held[key] = km.holdTicks
	return GameKeyHandled
}

// Expire advances every hold by one tick and emits key-up events for
// keys whose hold ran out.
func (km *KeyMapper) Expire(frame *core.InputFrame) {
	var released []string
	for k, left := range km.held {
		left--
		if left <= 0 {
			released = append(released, k)
			continue
		}
		km.held[k] = left
	}
	sort.Strings(released)
	for _, k := range released {
		delete(km.held, k)
		frame.Push(core.KeyRelease(k))
	}
}

// Release lets go of every held key.
func (km *KeyMapper) Release(frame *core.InputFrame) {
	keys := make([]string, 0, len(km.held))
	for k := range km.held {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		delete(km.held, k)
		if frame != nil {
			frame.Push(core.KeyRelease(k))
		}
	}
}

// Held reports whether a logical key is currently held.
func (km *KeyMapper) Held(key string) bool {
	_, ok := km.held[key]
	return ok
}

// MapMouse converts a mouse message inside view into a pointer event.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, view core.Rect, frame *core.InputFrame) bool {
	if !view.Contains(msg.X, msg.Y) {
		return false
	}
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
	default:
		return false
	}
	x := float64(msg.X-view.X) + 0.5
	y := float64(msg.Y-view.Y) + 0.5
	frame.Push(core.Pointer(x, y, float64(view.W), float64(view.H)))
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
