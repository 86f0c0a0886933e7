package faultinject

import "sync/atomic"

// Counter is the process-wide slow-command counter that drives the
// delay schedule. It only ever advances while the process runs; a
// restart starts the progression over from zero.
type Counter struct {
	n atomic.Int64
}

// Next advances the counter and returns the new value. It is a single
// indivisible increment-and-read, so concurrent slow decisions each
// observe a distinct consecutive value.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// Load returns the current value without advancing it.
func (c *Counter) Load() int64 {
	return c.n.Load()
}

// Reset puts the counter back to zero. Used by tests and the demo
// reset endpoint; production traffic never calls this.
func (c *Counter) Reset() {
	c.n.Store(0)
}
