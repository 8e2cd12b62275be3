package core

import "time"

// RuntimeConfig carries the settings a play mode needs beyond the YAML
// configuration: the screen size, render rate and randomizer seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render ticks per second
	Seed     int64 // Bag seed; 0 means pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// ResolveSeed returns cfg.Seed, or a clock-derived seed when it is zero.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// GameState is the status line of a session, read by the platform each frame.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Lines cleared so far
	Pieces   int  // Pieces locked so far
	Level    int  // Displayed difficulty level, 1-based
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}
