package core

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClockFirstTickAnchors(t *testing.T) {
	c := NewClock(0)
	start := time.Unix(1000, 0)

	dt, elapsed := c.Tick(start)
	if dt != 0 || elapsed != 0 {
		t.Errorf("first Tick() = (%f, %f), expected (0, 0)", dt, elapsed)
	}

	dt, elapsed = c.Tick(start.Add(250 * time.Millisecond))
	if !approx(dt, 0.25) || !approx(elapsed, 0.25) {
		t.Errorf("Tick() = (%f, %f), expected (0.25, 0.25)", dt, elapsed)
	}

	dt, elapsed = c.Tick(start.Add(time.Second))
	if !approx(dt, 0.75) || !approx(elapsed, 1.0) {
		t.Errorf("Tick() = (%f, %f), expected (0.75, 1.0)", dt, elapsed)
	}
}

func TestClockPause(t *testing.T) {
	c := NewClock(0)
	start := time.Unix(0, 0)
	c.Tick(start)
	c.Tick(start.Add(time.Second))

	c.Pause()
	if !c.Paused() {
		t.Fatal("Paused() should be true after Pause()")
	}
	dt, elapsed := c.Tick(start.Add(5 * time.Second))
	if dt != 0 || !approx(elapsed, 1.0) {
		t.Errorf("paused Tick() = (%f, %f), expected (0, 1)", dt, elapsed)
	}

	c.Resume()
	dt, elapsed = c.Tick(start.Add(5*time.Second + 500*time.Millisecond))
	if !approx(dt, 0.5) || !approx(elapsed, 1.5) {
		t.Errorf("resumed Tick() = (%f, %f), expected (0.5, 1.5)", dt, elapsed)
	}
}

func TestClockMaxStep(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	start := time.Unix(0, 0)
	c.Tick(start)

	dt, _ := c.Tick(start.Add(3 * time.Second))
	if !approx(dt, 0.1) {
		t.Errorf("Tick() with MaxStep = %f, expected 0.1", dt)
	}
}

func TestClockBackwardsTimestamp(t *testing.T) {
	c := NewClock(0)
	start := time.Unix(10, 0)
	c.Tick(start)

	dt, elapsed := c.Tick(start.Add(-time.Second))
	if dt != 0 || elapsed != 0 {
		t.Errorf("Tick() with earlier timestamp = (%f, %f), expected (0, 0)", dt, elapsed)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(0)
	start := time.Unix(0, 0)
	c.Tick(start)
	c.Tick(start.Add(2 * time.Second))
	c.Pause()

	c.Reset()
	if c.Elapsed() != 0 || c.Paused() {
		t.Errorf("Reset should clear elapsed and pause, got elapsed=%f paused=%v", c.Elapsed(), c.Paused())
	}
	dt, _ := c.Tick(start.Add(10 * time.Second))
	if dt != 0 {
		t.Errorf("first Tick() after Reset = %f, expected 0", dt)
	}
}
