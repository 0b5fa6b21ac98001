package core

// RuntimeConfig is what a front end knows about its surface when it starts a game.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in cells
	ScreenH   int    // Screen height in cells
	FrameRate int    // Frames rendered per second
	Seed      *int64 // Seed of the first run; nil derives one from the clock
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}
