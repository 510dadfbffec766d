package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Canvas dimensions define the logical simulation space; screen dimensions
// define the terminal cells it is projected onto.
type RuntimeConfig struct {
	CanvasW  float64 // Logical canvas width in pixels
	CanvasH  float64 // Logical canvas height in pixels
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for level generation (0 = time-based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  800,
		CanvasH:  600,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game as seen by the
// platform layer.
type GameState struct {
	Score    int64 // Recorded completion time in milliseconds (victory only)
	GameOver bool  // Whether the current run has ended
	Victory  bool  // Whether the run ended by reaching the goal
	Paused   bool  // Whether the game is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
