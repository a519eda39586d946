package core

import "time"

// Clock turns host frame timestamps into the (dt, elapsed) pair games consume.
// Timestamps from time.Now carry a monotonic reading, so wall-clock jumps do
// not leak into the simulation. Games never read time themselves.
type Clock struct {
	// MaxStep caps a single delta. Zero means no cap. Hosts set this so a
	// suspended terminal does not teleport every rock on resume.
	MaxStep time.Duration

	started bool
	paused  bool
	last    time.Time
	elapsed time.Duration
}

// NewClock creates a clock with the given per-tick cap.
func NewClock(maxStep time.Duration) *Clock {
	return &Clock{MaxStep: maxStep}
}

// Tick advances the clock to now and returns the seconds since the previous
// tick and the total unpaused seconds since the clock started.
// The first tick only anchors the clock and reports a zero delta.
func (c *Clock) Tick(now time.Time) (dt, elapsed float64) {
	if !c.started {
		c.started = true
		c.last = now
		return 0, c.elapsed.Seconds()
	}

	d := now.Sub(c.last)
	c.last = now
	if c.paused || d < 0 {
		d = 0
	}
	if c.MaxStep > 0 && d > c.MaxStep {
		d = c.MaxStep
	}

	c.elapsed += d
	return d.Seconds(), c.elapsed.Seconds()
}

// Pause stops time from accruing until Resume is called.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume lets time accrue again from the next tick on.
func (c *Clock) Resume() {
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// Elapsed returns the total unpaused seconds seen so far.
func (c *Clock) Elapsed() float64 {
	return c.elapsed.Seconds()
}

// Reset forgets all accrued time; the next tick re-anchors the clock.
func (c *Clock) Reset() {
	c.started = false
	c.paused = false
	c.elapsed = 0
}
