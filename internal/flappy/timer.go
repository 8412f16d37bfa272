package flappy

import (
	"math"
	"time"
)

// Timer is a fixed-interval timer clocked by host ticks rather than by
// wall time, so several timers can share one tick source and never fire
// concurrently.
type Timer struct {
	period  int // Host ticks between firings
	elapsed int
	running bool
}

// NewTimer creates a stopped timer firing every interval on a host running
// at tickRate ticks per second. The period is at least one tick.
func NewTimer(interval time.Duration, tickRate int) *Timer {
	return &Timer{period: periodTicks(interval, tickRate)}
}

func periodTicks(interval time.Duration, tickRate int) int {
	ticks := int(math.Round(interval.Seconds() * float64(tickRate)))
	if ticks < 1 {
		return 1
	}
	return ticks
}

// Start (re)starts the timer. The first firing is one full period away.
func (t *Timer) Start() {
	t.elapsed = 0
	t.running = true
}

// Stop halts the timer. Advance never fires while stopped.
func (t *Timer) Stop() {
	t.running = false
}

// Running reports whether the timer is started.
func (t *Timer) Running() bool {
	return t.running
}

// Period returns the number of host ticks between firings.
func (t *Timer) Period() int {
	return t.period
}

// Advance moves the timer forward one host tick and reports whether it fired.
func (t *Timer) Advance() bool {
	if !t.running {
		return false
	}
	t.elapsed++
	if t.elapsed < t.period {
		return false
	}
	t.elapsed = 0
	return true
}

