package core

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	LevelID  string
	Level    int // zero-based position in the run
	Levels   int
	Moves    int
	Undos    int
	Cleared  bool // the current board has reached its goal
	GameOver bool // no levels remain
}

// Completion describes a level that was just cleared.
type Completion struct {
	LevelID string
	Moves   int
	Undos   int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Completed is set on the tick a level is cleared.
	Completed *Completion

	// Quit is set when the game asks the platform to exit.
	Quit bool
}
