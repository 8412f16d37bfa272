package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy/internal/core"
)

// TextStyle selects how a host draws a text overlay.
type TextStyle int

const (
	TextScore    TextStyle = iota // Small white HUD text
	TextGameOver                  // Large red title
	TextHint                      // Small white hint
)

// DrawOp places one sprite stretched over a rectangle.
type DrawOp struct {
	Sprite Sprite
	Rect   core.Rect
}

// TextOp places one line of text. X, Y is the baseline origin, or the
// baseline center when Centered is set.
type TextOp struct {
	Text     string
	X, Y     int
	Style    TextStyle
	Centered bool
}

// Frame is a complete description of one rendered frame in board units.
// Sprites are in draw order.
type Frame struct {
	Width, Height int
	Sprites       []DrawOp
	Texts         []TextOp
	Over          bool
	Score         int
}

// Render describes the current session as a frame. It does not mutate s.
func Render(s *Session, r Rules) Frame {
	f := Frame{
		Width:   r.BoardW,
		Height:  r.BoardH,
		Sprites: make([]DrawOp, 0, len(s.Pipes)+2),
		Over:    s.Over,
		Score:   s.Score,
	}

	f.Sprites = append(f.Sprites,
		DrawOp{Sprite: SpriteBackground, Rect: core.NewRect(0, 0, r.BoardW, r.BoardH)},
		DrawOp{Sprite: s.Bird.Sprite, Rect: s.Bird.Rect()},
	)
	for _, p := range s.Pipes {
		f.Sprites = append(f.Sprites, DrawOp{Sprite: p.Sprite, Rect: p.Rect()})
	}

	f.Texts = append(f.Texts, TextOp{
		Text:  fmt.Sprintf("Score: %d", s.Score),
		X:     10,
		Y:     20,
		Style: TextScore,
	})

	if s.Over {
		f.Texts = append(f.Texts,
			TextOp{
				Text:     "Game Over!",
				X:        r.BoardW / 2,
				Y:        r.BoardH / 2,
				Style:    TextGameOver,
				Centered: true,
			},
			TextOp{
				Text:     fmt.Sprintf("Press '%s' to Restart", r.RestartKey),
				X:        r.BoardW / 2,
				Y:        r.BoardH/2 + 40,
				Style:    TextHint,
				Centered: true,
			},
		)
	}

	return f
}
