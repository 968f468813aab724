package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a wall-clock delay in milliseconds to whole ticks.
// Negative delays clamp to zero.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return (ms*rate + 999) / 1000
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	HighScore int    // Best score stored in the profile
	Lives     int    // Remaining lives
	Level     int    // Current level
	Combo     int    // Current combo counter
	MaxCombo  int    // Best combo this session
	Status    string // Mode, event and power-up status line
	GameOver  bool   // Whether the session has ended
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick the session ended.
	Ended bool
}

// SessionSummary describes a finished session for the game over screen.
type SessionSummary struct {
	Mode         string
	Score        int
	Level        int
	MaxCombo     int
	HighScore    int
	NewHighScore bool
	Seconds      int      // survival time
	Unlocked     []string // achievements unlocked this session
}
