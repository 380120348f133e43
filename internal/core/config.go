package core

// RuntimeConfig is the configuration handed to the game at initialization.
// It replaces the process-wide screen/clock singletons of a typical arcade
// loop: everything the game needs to run arrives through this struct.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  28,
		TickRate: 10,
		Seed:     0,
	}
}

// GameState is the externally visible state of the game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
