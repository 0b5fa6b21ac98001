package core

// Clock turns a stream of per-frame time deltas into fixed-rate simulation ticks.
//
// Frame time is accumulated until it strictly exceeds the tick interval. At that point
// the whole accumulated value is handed out as the tick's dt and the accumulator drops
// back to zero; overshoot is not carried into the next interval and nothing is clamped.
// At most one tick fires per Advance call.
type Clock struct {
	interval float64
	acc      float64
}

// NewClock creates a clock firing updatesPerSecond times per second of accumulated time.
// A non-positive rate yields a clock that fires on every non-zero advance.
func NewClock(updatesPerSecond float64) *Clock {
	c := &Clock{}
	if updatesPerSecond > 0 {
		c.interval = 1.0 / updatesPerSecond
	}
	return c
}

// Advance adds dt seconds of frame time. When the accumulator passes the interval it
// returns the accumulated time and true, and resets.
func (c *Clock) Advance(dt float64) (float64, bool) {
	c.acc += dt
	if c.acc > c.interval {
		elapsed := c.acc
		c.acc = 0
		return elapsed, true
	}
	return 0, false
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
