package flappy

// Session is the mutable state of one game. It is owned by exactly one
// Controller (or test) and only ever touched from the host's event loop.
type Session struct {
	Bird      Bird
	Pipes     []Pipe // Insertion order; cleared only by Reset
	VelocityY int
	Score     int
	Over      bool
}

// NewSession returns a fresh session for the given rules.
func NewSession(r Rules) *Session {
	s := &Session{}
	s.Reset(r)
	return s
}

// Tick advances the simulation by one update step.
func (s *Session) Tick(r Rules) {
	// Score counts survived ticks, not pipes cleared.
	s.Score++

	s.VelocityY += r.Gravity
	s.Bird.Y += s.VelocityY
	if s.Bird.Y < 0 {
		s.Bird.Y = 0
	}

	bird := s.Bird.Rect()
	for i := range s.Pipes {
		s.Pipes[i].X += r.PipeVelocity
		if Collides(bird, s.Pipes[i].Rect()) {
			s.Over = true
		}
	}

	// Falling below the board is the other way to lose; there is no floor.
	if s.Bird.Y > r.BoardH {
		s.Over = true
	}
}

// Jump sets the vertical velocity to the jump impulse, whatever it was.
func (s *Session) Jump(r Rules) {
	s.VelocityY = r.JumpVelocity
}

// Reset restores the starting state.
func (s *Session) Reset(r Rules) {
	s.Bird = r.NewBird()
	s.VelocityY = 0
	s.Pipes = nil
	s.Score = 0
	s.Over = false
}
