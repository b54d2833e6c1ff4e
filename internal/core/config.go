package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 12,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Length   int
	GameOver bool // Lost or won; waiting for restart
	Won      bool
	Paused   bool
	Ticks    int // Moves applied since the last restart
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ate   bool // Food was consumed this tick
	Died  bool // The game transitioned to game over this tick
}
