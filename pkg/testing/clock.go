package testing

import (
	"sync"
	"time"
)

// Epoch is the start time of every FakeClock.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock provides controllable time for deterministic animation and
// input tests. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Since returns the time elapsed since Epoch.
func (c *FakeClock) Since() time.Duration {
	return c.Now().Sub(Epoch)
}
