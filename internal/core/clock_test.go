package core

import (
	"math"
	"testing"
)

func TestClockFiresAfterInterval(t *testing.T) {
	c := NewClock(8) // 0.125s interval

	if _, ok := c.Advance(0.0625); ok {
		t.Fatal("should not fire before the interval")
	}
	if _, ok := c.Advance(0.0625); ok {
		t.Fatal("should not fire at exactly the interval (strictly greater)")
	}

	dt, ok := c.Advance(0.03125)
	if !ok {
		t.Fatal("should fire once past the interval")
	}
	if math.Abs(dt-0.15625) > 1e-9 {
		t.Errorf("tick dt = %f, expected the whole accumulated 0.15625", dt)
	}
	if _, ok := c.Advance(0.0625); ok {
		t.Error("accumulator should restart from zero after a tick")
	}
}

func TestClockDropsOvershoot(t *testing.T) {
	c := NewClock(10)

	// A single long frame fires exactly one tick and nothing carries over.
	dt, ok := c.Advance(0.35)
	if !ok || dt != 0.35 {
		t.Fatalf("Advance(0.35) = (%f, %v), expected (0.35, true)", dt, ok)
	}
	if _, ok := c.Advance(0.01); ok {
		t.Error("overshoot must not be carried into the next interval")
	}
}

func TestClockTickCount(t *testing.T) {
	c := NewClock(8)
	frame := 1.0 / 32.0

	ticks := 0
	for range 40 {
		if _, ok := c.Advance(frame); ok {
			ticks++
		}
	}

	// Four frames land exactly on the interval, which is not enough; each tick
	// needs five, so 40 frames produce 8 ticks instead of 10.
	if ticks != 8 {
		t.Errorf("expected 8 ticks in 40 frames, got %d", ticks)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(10)
	c.Advance(0.09)
	c.Reset()

	if _, ok := c.Advance(0.09); ok {
		t.Error("Reset should drop accumulated time")
	}
	if _, ok := c.Advance(0.02); !ok {
		t.Error("Clock should fire once the interval passes after Reset")
	}
}

func TestClockZeroRate(t *testing.T) {
	c := NewClock(0)

	if _, ok := c.Advance(0); ok {
		t.Error("zero advance should never fire")
	}
	if _, ok := c.Advance(0.001); !ok {
		t.Error("zero-rate clock should fire on any positive advance")
	}
}
