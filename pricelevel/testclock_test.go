package pricelevel

import "sync/atomic"

// fixedClock is a deterministic Clock for tests: each call to NowMillis
// advances by one tick from a starting point, so waiting-time and
// last-execution-time assertions don't depend on wall-clock timing.
type fixedClock struct {
	millis atomic.Uint64
}

func newFixedClock(start uint64) *fixedClock {
	c := &fixedClock{}
	c.millis.Store(start)
	return c
}

func (c *fixedClock) NowMillis() uint64 {
	return c.millis.Add(1)
}

func (c *fixedClock) Set(v uint64) {
	c.millis.Store(v)
}
