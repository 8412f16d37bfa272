package flappy

import (
	"strings"

	"github.com/vovakirdan/flappy/internal/config"
)

// Rules holds the immutable integer parameters of one game, derived from config.
type Rules struct {
	BoardW, BoardH int

	BirdX, BirdY int
	BirdW, BirdH int

	PipeX, PipeY int
	PipeW, PipeH int
	Gap          int

	Gravity      int
	JumpVelocity int
	PipeVelocity int

	RestartKey string // Label shown in the game over hint
}

// NewRules derives game rules from a validated config.
func NewRules(cfg config.FlappyConfig) Rules {
	restart := "R"
	if len(cfg.Keys.Restart) > 0 {
		restart = strings.ToUpper(cfg.Keys.Restart[0])
	}

	return Rules{
		BoardW:       cfg.Board.Width,
		BoardH:       cfg.Board.Height,
		BirdX:        cfg.Bird.X,
		BirdY:        cfg.Bird.Y,
		BirdW:        cfg.Bird.Width,
		BirdH:        cfg.Bird.Height,
		PipeX:        cfg.Pipes.X,
		PipeY:        cfg.Pipes.Y,
		PipeW:        cfg.Pipes.Width,
		PipeH:        cfg.Pipes.Height,
		Gap:          cfg.Gap(),
		Gravity:      cfg.Physics.Gravity,
		JumpVelocity: cfg.Physics.JumpVelocity,
		PipeVelocity: cfg.Physics.PipeVelocity,
		RestartKey:   restart,
	}
}

// DefaultRules returns the rules for the built-in configuration.
func DefaultRules() Rules {
	return NewRules(config.DefaultFlappyConfig())
}

// NewBird returns a bird at the starting position.
func (r Rules) NewBird() Bird {
	return Bird{X: r.BirdX, Y: r.BirdY, W: r.BirdW, H: r.BirdH, Sprite: SpriteBird}
}
