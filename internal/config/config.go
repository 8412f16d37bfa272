// Package config provides YAML-based game configuration loading, validation
// and hot reloading.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Board   Board   `yaml:"board"`
	Bird    Bird    `yaml:"bird"`
	Pipes   Pipes   `yaml:"pipes"`
	Physics Physics `yaml:"physics"`
	Timing  Timing  `yaml:"timing"`
	Keys    Keys    `yaml:"keys"`
	Assets  Assets  `yaml:"assets"`
}

// Board is the fixed playfield size in logical units.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Bird defines the avatar's spawn position and hitbox.
type Bird struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Pipes defines where pipes spawn and how big they are.
type Pipes struct {
	X      int `yaml:"x"` // Spawn x, normally the right edge of the board
	Y      int `yaml:"y"` // Baseline the random top offset is measured from
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines per-tick velocities and acceleration.
type Physics struct {
	Gravity      int `yaml:"gravity"`       // Added to vertical velocity every tick
	JumpVelocity int `yaml:"jump_velocity"` // Vertical velocity set by a jump (negative = up)
	PipeVelocity int `yaml:"pipe_velocity"` // Horizontal pipe velocity per tick (negative = left)
}

// Timing defines the two fixed intervals of the game loop.
type Timing struct {
	TickRate      int           `yaml:"tick_rate"`      // Update ticks per second
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Time between pipe pairs
}

// Keys lists key names bound to each action.
// Names follow Bubble Tea conventions ("space", "up", "r", "enter").
type Keys struct {
	Jump    []string `yaml:"jump"`
	Restart []string `yaml:"restart"`
}

// Assets names the four sprite images.
type Assets struct {
	Background string `yaml:"background"`
	Bird       string `yaml:"bird"`
	TopPipe    string `yaml:"top_pipe"`
	BottomPipe string `yaml:"bottom_pipe"`
}

// Gap returns the vertical opening between a top and bottom pipe.
func (c FlappyConfig) Gap() int {
	return c.Board.Height / 4
}

// Validate reports every problem with the configuration at once.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Board.Width > 0 && c.Board.Height > 0, "board size must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	check(c.Bird.Width > 0 && c.Bird.Height > 0, "bird size must be positive, got %dx%d", c.Bird.Width, c.Bird.Height)
	check(c.Bird.Y >= 0, "bird.y must not be negative, got %d", c.Bird.Y)
	check(c.Pipes.Width > 0 && c.Pipes.Height > 0, "pipe size must be positive, got %dx%d", c.Pipes.Width, c.Pipes.Height)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %d", c.Physics.Gravity)
	check(c.Timing.TickRate > 0, "timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	check(c.Timing.SpawnInterval > 0, "timing.spawn_interval must be positive, got %s", c.Timing.SpawnInterval)
	check(len(c.Keys.Jump) > 0, "keys.jump must name at least one key")
	check(len(c.Keys.Restart) > 0, "keys.restart must name at least one key")
	check(c.Assets.Background != "" && c.Assets.Bird != "" && c.Assets.TopPipe != "" && c.Assets.BottomPipe != "",
		"all four assets must be named")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
