// Package registry provides a global registry for game mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-paws/internal/config"
	"github.com/vovakirdan/shadow-paws/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "endless", "story").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session with the mode's starting values.
	// The RuntimeConfig provides tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame onto the surface.
	Render(dst core.Surface)

	// State returns the current game state.
	State() core.GameState
}

// Notifier is implemented by games that emit toast messages for the host.
type Notifier interface {
	// DrainNotices returns and clears pending messages.
	DrainNotices() []string
}

// Summarizer is implemented by games that report a game over summary.
type Summarizer interface {
	Summary() core.SessionSummary
}

// Deferrer is implemented by games that keep deferred cosmetic work
// queued after a session ends. Hosts keep ticking while Pending is
// non-zero.
type Deferrer interface {
	Pending() int
}

// Env carries the collaborators a game is built with.
type Env struct {
	Config    config.GameConfig
	Store     core.KV
	Tones     core.ToneSink
	Presenter core.Presenter
	Logger    *log.Logger
	Now       func() time.Time
}

// WithDefaults fills unset collaborators with inert implementations.
func (e Env) WithDefaults() Env {
	if e.Config == (config.GameConfig{}) {
		e.Config = config.DefaultGameConfig()
	}
	if e.Store == nil {
		e.Store = memoryKV{}
	}
	if e.Tones == nil {
		e.Tones = core.NopTones{}
	}
	if e.Presenter == nil {
		e.Presenter = core.NopPresenter{}
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}

// memoryKV is a throwaway store for environments without persistence.
type memoryKV map[string]string

func (m memoryKV) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memoryKV) Set(key, value string) {
	m[key] = value
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
	Order       int // menu position
	Hidden      bool
}

// Factory is a function that creates a new instance of a mode.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ModeInfo)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a game package's init() function.
// Panics if a mode with the same ID is already registered.
func Register(info ModeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered modes in menu order.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of one mode.
func Info(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a mode by its ID.
// Returns an error if the mode ID is not registered.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(env.WithDefaults()), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
