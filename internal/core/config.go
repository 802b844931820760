package core

// World dimensions. All simulation and drawing happens in this coordinate
// space; adapters scale it to whatever surface they own.
const (
	WorldWidth  = 1000
	WorldHeight = 700
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Surface width (cells for the terminal, pixels for a window)
	ScreenH  int   // Surface height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  35,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a platform needs from the game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the match has ended
	Paused   bool // Whether the game is paused
	InMenu   bool // Whether the main menu is showing
	Quit     bool // Whether the game asked to terminate
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
