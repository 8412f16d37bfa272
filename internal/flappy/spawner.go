package flappy

// Rand is the random source used to place pipes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner appends pipe pairs to a session.
type Spawner struct {
	rng Rand
}

// NewSpawner creates a spawner drawing offsets from rng.
func NewSpawner(rng Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn appends a top and a bottom pipe at the spawn x. The top pipe is
// lifted by a quarter of its height plus up to another half, and the bottom
// pipe starts one gap below the top pipe's lower edge.
func (sp *Spawner) Spawn(s *Session, r Rules) {
	offset := float64(r.PipeY) - float64(r.PipeH)/4 - sp.rng.Float64()*(float64(r.PipeH)/2)
	topY := int(offset)

	top := Pipe{X: r.PipeX, Y: topY, W: r.PipeW, H: r.PipeH, Sprite: SpriteTopPipe}
	bottom := Pipe{X: r.PipeX, Y: topY + r.PipeH + r.Gap, W: r.PipeW, H: r.PipeH, Sprite: SpriteBottomPipe}

	s.Pipes = append(s.Pipes, top, bottom)
}
