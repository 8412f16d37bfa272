package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: Board{
			Width:  360,
			Height: 640,
		},
		Bird: Bird{
			X:      360 / 8,
			Y:      640 / 2,
			Width:  34,
			Height: 24,
		},
		Pipes: Pipes{
			X:      360,
			Y:      0,
			Width:  64,
			Height: 512,
		},
		Physics: Physics{
			Gravity:      1,
			JumpVelocity: -12,
			PipeVelocity: -4,
		},
		Timing: Timing{
			TickRate:      144,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Keys: Keys{
			Jump:    []string{"space", "up"},
			Restart: []string{"r"},
		},
		Assets: Assets{
			Background: "images/flappybirdbg.png",
			Bird:       "images/flappybird.png",
			TopPipe:    "images/toppipe.png",
			BottomPipe: "images/bottompipe.png",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
