package core

// RuntimeConfig contains host-level settings passed to a game host at startup.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (pixels for the window, cells for the terminal)
	ScreenH  int   // Host surface height
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for obstacle placement; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults for a terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 144,
		Seed:     0, // 0 means use current time in platform layer
	}
}
