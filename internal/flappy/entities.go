// Package flappy implements the game: a bird falls under gravity and must
// pass through gaps between scrolling pipe pairs.
//
// Everything here is pure logic on plain data. Hosts (the Ebiten window and
// the Bubble Tea terminal) own the clock and the input, call into a
// Controller, and draw the Frame it produces.
package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Sprite names one of the four images a frame is drawn from.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteBird
	SpriteTopPipe
	SpriteBottomPipe
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteBird:
		return "bird"
	case SpriteTopPipe:
		return "top_pipe"
	case SpriteBottomPipe:
		return "bottom_pipe"
	default:
		return "unknown"
	}
}

// Bird is the player-controlled avatar. X never changes after creation.
type Bird struct {
	X, Y   int
	W, H   int
	Sprite Sprite
}

// Rect returns the bird's collision rectangle.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Pipe is one half of an obstacle pair. Y is fixed at creation; X drifts left.
type Pipe struct {
	X, Y   int
	W, H   int
	Sprite Sprite
}

// Rect returns the pipe's collision rectangle.
func (p Pipe) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
