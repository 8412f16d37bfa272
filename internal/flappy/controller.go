package flappy

import (
	"time"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Controller owns a session and drives it from a single tick source.
//
// Two logical timers hang off that source: the update timer (one firing per
// update step) and the spawn timer (one pipe pair per spawn interval). When
// the session ends both timers stop, and only a restart starts them again:
//
//	Running --(collision or fell out)--> Over --(restart)--> Running
type Controller struct {
	rules    Rules
	tickRate int
	interval time.Duration
	pending  *config.FlappyConfig

	session *Session
	spawner *Spawner
	update  *Timer
	spawn   *Timer

	onGameOver func(score int)
}

// NewController creates a running game from cfg, placing pipes with rng.
// cfg.Timing.TickRate is the rate at which the host will call Step.
func NewController(cfg config.FlappyConfig, rng Rand) *Controller {
	c := &Controller{
		tickRate: cfg.Timing.TickRate,
		spawner:  NewSpawner(rng),
	}
	c.apply(cfg)
	c.session = NewSession(c.rules)
	c.start()
	return c
}

// apply installs gameplay parameters. The tick rate is fixed for the
// controller's lifetime since the host is already running at it.
func (c *Controller) apply(cfg config.FlappyConfig) {
	c.rules = NewRules(cfg)
	c.interval = cfg.Timing.SpawnInterval
	c.update = NewTimer(time.Second/time.Duration(c.tickRate), c.tickRate)
	c.spawn = NewTimer(c.interval, c.tickRate)
}

func (c *Controller) start() {
	c.update.Start()
	c.spawn.Start()
}

func (c *Controller) stop() {
	c.update.Stop()
	c.spawn.Stop()
}

// OnGameOver registers fn to be called once each time a session ends.
func (c *Controller) OnGameOver(fn func(score int)) {
	c.onGameOver = fn
}

// Step advances the host clock by one tick. It reports whether an update
// step ran, i.e. whether the host should redraw.
func (c *Controller) Step() bool {
	// Spawn before the update: a new pair moves on the tick it appears.
	if c.spawn.Advance() {
		c.spawner.Spawn(c.session, c.rules)
	}

	if !c.update.Advance() {
		return false
	}

	c.session.Tick(c.rules)
	if c.session.Over {
		c.stop()
		if c.onGameOver != nil {
			c.onGameOver(c.session.Score)
		}
	}
	return true
}

// Handle applies one input action. It reports whether the action changed
// anything.
func (c *Controller) Handle(a core.Action) bool {
	switch a {
	case core.ActionJump:
		c.session.Jump(c.rules)
		return true
	case core.ActionRestart:
		if !c.session.Over {
			return false
		}
		c.Restart()
		return true
	default:
		return false
	}
}

// HandleFrame applies every action in the frame.
func (c *Controller) HandleFrame(in core.InputFrame) (changed bool) {
	in.Each(func(a core.Action) {
		if c.Handle(a) {
			changed = true
		}
	})
	return changed
}

// Restart resets the session, applies any queued configuration and
// restarts both timers.
func (c *Controller) Restart() {
	if c.pending != nil {
		c.apply(*c.pending)
		c.pending = nil
	}
	c.session.Reset(c.rules)
	c.start()
}

// Reconfigure queues new gameplay parameters for the next restart.
func (c *Controller) Reconfigure(cfg config.FlappyConfig) {
	c.pending = &cfg
}

// Running reports whether the timers are running (the session is live).
func (c *Controller) Running() bool {
	return c.update.Running()
}

// Over reports whether the current session has ended.
func (c *Controller) Over() bool {
	return c.session.Over
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.session.Score
}

// Rules returns the rules of the current session.
func (c *Controller) Rules() Rules {
	return c.rules
}

// Session exposes the session for inspection. Callers must not keep it
// across steps.
func (c *Controller) Session() *Session {
	return c.session
}

// SpawnPeriod returns the number of host ticks between pipe pairs.
func (c *Controller) SpawnPeriod() int {
	return c.spawn.Period()
}

// Frame renders the current session.
func (c *Controller) Frame() Frame {
	return Render(c.session, c.rules)
}
